package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/service"
)

type registryFixture struct {
	candidateRepo *repository.CandidateRepository
	electionRepo  *repository.ElectionRepository
	ballotRepo    *repository.BallotRepository
	svc           *service.RegistryService
}

func newRegistryFixture(t *testing.T) *registryFixture {
	t.Helper()

	kv := newTestKV(t)
	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(kv))
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(kv), kv)
	ballotRepo := repository.NewBallotRepository(dao.NewBallotDAO(kv))

	return &registryFixture{
		candidateRepo: candidateRepo,
		electionRepo:  electionRepo,
		ballotRepo:    ballotRepo,
		svc:           service.NewRegistryService(candidateRepo, electionRepo),
	}
}

func validCandidate(position string) domain.Candidate {
	return domain.Candidate{
		Name:       "Rahim Uddin",
		StudentID:  "2019331502",
		Position:   position,
		Department: "Computer Science & Engineering",
		Session:    "2019-20",
		Manifesto:  "Better labs",
		Symbol:     "Chair",
	}
}

func TestRegistryService_Positions(t *testing.T) {
	f := newRegistryFixture(t)

	positions := f.svc.Positions()
	require.Len(t, positions, len(dao.Positions))
	assert.Equal(t, "VP", positions[0].ID)
	assert.NotEmpty(t, positions[0].TitleBn)
}

func TestRegistryService_AddCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and a zero tally", func(t *testing.T) {
		f := newRegistryFixture(t)

		created, err := f.svc.AddCandidate(ctx, validCandidate("VP"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 0, created.Votes)

		all, err := f.svc.Candidates(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("rejects blank required fields", func(t *testing.T) {
		f := newRegistryFixture(t)

		candidate := validCandidate("VP")
		candidate.Symbol = "   "
		_, err := f.svc.AddCandidate(ctx, candidate)
		require.ErrorIs(t, err, service.ErrMissingFields)
	})

	t.Run("rejects an unknown position", func(t *testing.T) {
		f := newRegistryFixture(t)

		_, err := f.svc.AddCandidate(ctx, validCandidate("PRESIDENT"))
		require.ErrorIs(t, err, service.ErrPositionNotFound)
	})
}

func TestRegistryService_UpdateCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves the tally across edits", func(t *testing.T) {
		f := newRegistryFixture(t)

		created, err := f.svc.AddCandidate(ctx, validCandidate("VP"))
		require.NoError(t, err)
		_, err = f.candidateRepo.IncrementVotes(ctx, created.ID)
		require.NoError(t, err)

		edited := created
		edited.Name = "Rahim U."
		edited.Votes = 999

		updated, err := f.svc.UpdateCandidate(ctx, edited)
		require.NoError(t, err)
		assert.Equal(t, "Rahim U.", updated.Name)
		assert.Equal(t, 1, updated.Votes)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		f := newRegistryFixture(t)

		candidate := validCandidate("VP")
		candidate.ID = "no-such-id"
		_, err := f.svc.UpdateCandidate(ctx, candidate)
		require.ErrorIs(t, err, service.ErrCandidateNotFound)
	})
}

func TestRegistryService_DeleteCandidate(t *testing.T) {
	ctx := context.Background()
	f := newRegistryFixture(t)

	created, err := f.svc.AddCandidate(ctx, validCandidate("VP"))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCandidate(ctx, created.ID))
	require.ErrorIs(t, f.svc.DeleteCandidate(ctx, created.ID), service.ErrCandidateNotFound)
}

func TestRegistryService_ToggleElection(t *testing.T) {
	ctx := context.Background()
	f := newRegistryFixture(t)

	err := f.electionRepo.Save(ctx, domain.ElectionState{VotedCount: 2, TotalVoters: 5})
	require.NoError(t, err)

	state, err := f.svc.ToggleElection(ctx, true)
	require.NoError(t, err)
	assert.True(t, state.IsActive)
	assert.Equal(t, 2, state.VotedCount)
	assert.Equal(t, 5, state.TotalVoters)

	state, err = f.svc.ToggleElection(ctx, false)
	require.NoError(t, err)
	assert.False(t, state.IsActive)
}

func TestRegistryService_ResetAllVotes(t *testing.T) {
	ctx := context.Background()
	f := newRegistryFixture(t)

	created, err := f.svc.AddCandidate(ctx, validCandidate("VP"))
	require.NoError(t, err)
	_, err = f.candidateRepo.IncrementVotes(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, f.ballotRepo.AppendPosition(ctx, "2019331502", "VP"))
	require.NoError(t, f.electionRepo.Save(ctx, domain.ElectionState{IsActive: true, VotedCount: 1, TotalVoters: 5}))

	require.NoError(t, f.svc.ResetAllVotes(ctx))

	got, err := f.candidateRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Votes)

	state, err := f.electionRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, state.VotedCount)
	assert.True(t, state.IsActive)

	// Ballot records survive a reset: the voter stays locked out.
	record, err := f.ballotRepo.Find(ctx, "2019331502")
	require.NoError(t, err)
	assert.True(t, record.HasVoted("VP"))
}

func TestRegistryService_ClearAllData(t *testing.T) {
	ctx := context.Background()
	f := newRegistryFixture(t)

	_, err := f.svc.AddCandidate(ctx, validCandidate("VP"))
	require.NoError(t, err)
	require.NoError(t, f.ballotRepo.AppendPosition(ctx, "2019331502", "VP"))

	require.NoError(t, f.svc.ClearAllData(ctx))

	all, err := f.svc.Candidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	record, err := f.ballotRepo.Find(ctx, "2019331502")
	require.NoError(t, err)
	assert.Empty(t, record.VotedPositions)
}
