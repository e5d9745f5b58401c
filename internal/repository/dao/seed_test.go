package dao_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/store"
)

func TestSeedElectionState(t *testing.T) {
	kv, err := store.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		kv.Close()
	})

	require.NoError(t, dao.SeedElectionState(kv))

	d := dao.NewElectionDAO(kv)
	state, err := d.Get()
	require.NoError(t, err)
	assert.False(t, state.IsActive)
	assert.Equal(t, 0, state.VotedCount)
	// Everyone on the roster except the admin can vote.
	assert.Equal(t, len(dao.Roster)-1, state.TotalVoters)

	// Seeding again must not clobber live counters.
	state.VotedCount = 3
	require.NoError(t, d.Put(state))
	require.NoError(t, dao.SeedElectionState(kv))

	state, err = d.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, state.VotedCount)
}

func TestFindPosition(t *testing.T) {
	p, ok := dao.FindPosition("VP")
	require.True(t, ok)
	assert.Equal(t, "Vice President", p.Title)

	_, ok = dao.FindPosition("NOPE")
	assert.False(t, ok)
}
