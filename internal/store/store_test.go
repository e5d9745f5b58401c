package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuselect/election-api/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	kv, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		kv.Close()
	})

	return kv
}

func TestStore_GetPut(t *testing.T) {
	kv := openTestStore(t)

	_, found, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Put("k", []byte("v1")))

	val, found, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), val)

	require.NoError(t, kv.Put("k", []byte("v2")))

	val, _, err = kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), val)
}

func TestStore_Delete(t *testing.T) {
	kv := openTestStore(t)

	require.NoError(t, kv.Put("k", []byte("v")))
	require.NoError(t, kv.Delete("k"))

	_, found, err := kv.Get("k")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	require.NoError(t, kv.Delete("k"))
}

func TestStore_Clear(t *testing.T) {
	kv := openTestStore(t)

	require.NoError(t, kv.Put("a", []byte("1")))
	require.NoError(t, kv.Put("b", []byte("2")))
	require.NoError(t, kv.Clear())

	_, found, err := kv.Get("a")
	require.NoError(t, err)
	assert.False(t, found)

	// The store stays usable after a wipe.
	require.NoError(t, kv.Put("c", []byte("3")))
	val, found, err := kv.Get("c")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("3"), val)
}
