package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "nested", "session.json")}

	data, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "missing file means no session, not an error")

	require.NoError(t, store.Save([]byte(`{"token":"t"}`)))

	data, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"token":"t"}`, string(data))

	require.NoError(t, store.Clear())
	data, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStore_PermissionsOwnerOnly(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	require.NoError(t, store.Save([]byte("secret")))

	info, err := os.Stat(store.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
