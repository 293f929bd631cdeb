package tfvars

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "terraform.tfvars"))
	f, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 0, f.Len())
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terraform.tfvars")
	store := NewStore(path)

	f := NewFile()
	f.Set("workspace_name", String("foo"))
	f.Set("enabled", Bool(true))
	require.NoError(t, store.Save(f))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.True(t, f.Equal(loaded))

	// No temp debris left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terraform.tfvars")
	require.NoError(t, os.WriteFile(path, []byte("old = \"stale\"\n"), 0644))

	store := NewStore(path)
	f := NewFile()
	f.Set("fresh", String("new"))
	require.NoError(t, store.Save(f))

	loaded, err := store.Load()
	require.NoError(t, err)
	_, ok := loaded.Get("old")
	require.False(t, ok)
	v, _ := loaded.Get("fresh")
	require.Equal(t, String("new"), v)
}
