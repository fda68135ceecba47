package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirRebinderRename(t *testing.T) {
	root := t.TempDir()
	oldPath := filepath.Join(root, "unnamed")
	require.NoError(t, os.Mkdir(oldPath, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(oldPath, "keep.txt"), []byte("data"), 0600))

	r := NewDirRebinder(oldPath)

	newPath, err := r.Rebind(context.Background(), "snake_game")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "snake_game"), newPath)

	assert.NoDirExists(t, oldPath)
	assert.FileExists(t, filepath.Join(newPath, "keep.txt"))
}

func TestDirRebinderNoops(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		r := NewDirRebinder("")
		newPath, err := r.Rebind(context.Background(), "snake_game")
		require.NoError(t, err)
		assert.Empty(t, newPath)
	})

	t.Run("empty name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "project")
		require.NoError(t, os.Mkdir(path, 0700))

		r := NewDirRebinder(path)
		newPath, err := r.Rebind(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
		assert.DirExists(t, path)
	})

	t.Run("name already matches", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snake_game")
		require.NoError(t, os.Mkdir(path, 0700))

		r := NewDirRebinder(path)
		newPath, err := r.Rebind(context.Background(), "snake_game")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
	})

	t.Run("directory does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing")

		r := NewDirRebinder(path)
		newPath, err := r.Rebind(context.Background(), "snake_game")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
	})
}

func TestDirRebinderTargetExists(t *testing.T) {
	root := t.TempDir()
	oldPath := filepath.Join(root, "unnamed")
	require.NoError(t, os.Mkdir(oldPath, 0700))
	require.NoError(t, os.Mkdir(filepath.Join(root, "snake_game"), 0700))

	r := NewDirRebinder(oldPath)

	_, err := r.Rebind(context.Background(), "snake_game")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The source directory is untouched on failure
	assert.DirExists(t, oldPath)
}
