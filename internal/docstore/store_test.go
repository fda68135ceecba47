package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), "docs")
	require.NoError(t, err)
	return store
}

func TestFileStoreSaveGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "requirement.txt", "make a snake game"))

	doc, err := store.Get(ctx, "requirement.txt")
	require.NoError(t, err)
	assert.Equal(t, "requirement.txt", doc.Name)
	assert.Equal(t, "make a snake game", doc.Content)
}

func TestFileStoreSaveReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "requirement.txt", "first version"))
	require.NoError(t, store.Save(ctx, "requirement.txt", "second"))

	doc, err := store.Get(ctx, "requirement.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", doc.Content)
}

func TestFileStoreSavePermissions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "secret.txt", "content"))

	info, err := os.Stat(filepath.Join(store.Dir(), "secret.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing.txt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "doc.txt", "content"))
	require.NoError(t, store.Delete(ctx, "doc.txt"))

	_, err := store.Get(ctx, "doc.txt")
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error
	require.NoError(t, store.Delete(ctx, "doc.txt"))
}

func TestFileStoreGetAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "b.json", "second"))
	require.NoError(t, store.Save(ctx, "a.json", "first"))
	require.NoError(t, store.Save(ctx, "c.json", "third"))

	// Leftover temp files from interrupted saves are invisible
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), ".a.json.tmp-123"), []byte("junk"), 0600))
	// Subdirectories are invisible too
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir(), "nested"), 0700))

	docs, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a.json", docs[0].Name)
	assert.Equal(t, "b.json", docs[1].Name)
	assert.Equal(t, "c.json", docs[2].Name)
}

func TestFileStoreGetAllEmpty(t *testing.T) {
	store := newTestStore(t)

	docs, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		docName string
		wantErr bool
	}{
		{name: "simple", docName: "requirement.txt", wantErr: false},
		{name: "uuid with suffix", docName: "8c6e1d3a-9f6e-4a3d-9c2b-0e1f2a3b4c5d.json", wantErr: false},
		{name: "empty", docName: "", wantErr: true},
		{name: "dot", docName: ".", wantErr: true},
		{name: "dotdot", docName: "..", wantErr: true},
		{name: "slash", docName: "a/b.txt", wantErr: true},
		{name: "backslash", docName: `a\b.txt`, wantErr: true},
		{name: "leading dot", docName: ".hidden", wantErr: true},
		{name: "traversal", docName: "../escape.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.docName)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewFileStoreValidation(t *testing.T) {
	_, err := NewFileStore("", "docs")
	require.Error(t, err)

	_, err = NewFileStore(t.TempDir(), "")
	require.Error(t, err)

	_, err = NewFileStore(t.TempDir(), "/etc")
	require.Error(t, err)

	_, err = NewFileStore(t.TempDir(), "../outside")
	require.Error(t, err)

	// Nested relative collections are fine
	store, err := NewFileStore(t.TempDir(), "docs/prds")
	require.NoError(t, err)
	assert.DirExists(t, store.Dir())
}
