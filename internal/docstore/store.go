package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Errors for store operations.
var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidName = errors.New("invalid document name")
)

// namePattern validates document names for filesystem safety.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Document is a named piece of content within a collection.
type Document struct {
	// Name is the document's stable identity within its collection.
	Name string `json:"name"`

	// Content is the raw document text.
	Content string `json:"content"`
}

// Store provides keyed get/get-all/save/delete over named documents
// within a logical collection.
type Store interface {
	// Get retrieves a document by name. Returns ErrNotFound if absent.
	Get(ctx context.Context, name string) (*Document, error)

	// GetAll returns every document in the collection, sorted by name.
	GetAll(ctx context.Context) ([]*Document, error)

	// Save writes a document's content under the given name, replacing
	// any previous content wholesale.
	Save(ctx context.Context, name, content string) error

	// Delete removes a document by name. Deleting a missing document is
	// not an error.
	Delete(ctx context.Context, name string) error
}

// FileStore implements Store over a directory on disk.
type FileStore struct {
	dir string
}

// NewFileStore creates a store for the collection at root/collection.
// The collection directory is created if missing.
func NewFileStore(root, collection string) (*FileStore, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace root cannot be empty")
	}
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	dir := filepath.Join(root, filepath.FromSlash(collection))
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create collection directory %s: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

// Dir returns the collection directory on disk.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get retrieves a document by name.
func (s *FileStore) Get(ctx context.Context, name string) (*Document, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read document %s: %w", name, err)
	}

	return &Document{Name: name, Content: string(content)}, nil
}

// GetAll returns every document in the collection, sorted by name.
func (s *FileStore) GetAll(ctx context.Context) ([]*Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}

	docs := make([]*Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Skip temp files from interrupted saves
		if strings.HasPrefix(name, ".") {
			continue
		}
		doc, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// Save writes a document atomically via temp file + rename.
func (s *FileStore) Save(ctx context.Context, name, content string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document %s: %w", name, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to save document %s: %w", name, err)
	}

	return nil
}

// Delete removes a document. Missing documents are not an error.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document %s: %w", name, err)
	}
	return nil
}

// ValidateName checks if a document name is safe for filesystem paths.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if len(name) > 255 {
		return fmt.Errorf("%w: name too long (max 255)", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: path traversal detected", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: path separators not allowed", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// validateCollection checks a collection's relative path for traversal.
func validateCollection(collection string) error {
	if collection == "" {
		return fmt.Errorf("collection cannot be empty")
	}
	if filepath.IsAbs(collection) {
		return fmt.Errorf("collection must be a relative path: %s", collection)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(collection)))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("collection escapes workspace root: %s", collection)
	}
	return nil
}
