package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Rebinder applies the workspace-identity rename side effect. It is invoked
// only on the first successful candidate-derived name resolution in a run.
type Rebinder interface {
	Rebind(ctx context.Context, name string) (newPath string, err error)
}

// DirRebinder renames the project directory to carry the bound name.
type DirRebinder struct {
	path string
}

// NewDirRebinder creates a rebinder for the project directory at path.
// An empty path produces a no-op rebinder.
func NewDirRebinder(path string) *DirRebinder {
	return &DirRebinder{path: path}
}

// Rebind renames the project directory so its base name matches name.
// Returns the new path. A missing or unset directory is a no-op.
func (r *DirRebinder) Rebind(ctx context.Context, name string) (string, error) {
	if r.path == "" || name == "" {
		return r.path, nil
	}
	if filepath.Base(r.path) == name {
		return r.path, nil
	}

	if _, err := os.Stat(r.path); err != nil {
		if os.IsNotExist(err) {
			return r.path, nil
		}
		return "", fmt.Errorf("failed to stat project path: %w", err)
	}

	newPath := filepath.Join(filepath.Dir(r.path), name)
	if _, err := os.Stat(newPath); err == nil {
		return "", fmt.Errorf("rename target already exists: %s", newPath)
	}

	if err := os.Rename(r.path, newPath); err != nil {
		return "", fmt.Errorf("failed to rename project directory: %w", err)
	}

	r.path = newPath
	return newPath, nil
}
