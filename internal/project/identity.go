package project

import "sync"

// Identity is the resolved project name plus an optional bound project
// path. It lives for one reconciliation run. The mutex serializes binding
// when PRD evaluations run in parallel; first bind wins.
type Identity struct {
	mu   sync.Mutex
	name string
	path string
}

// NewIdentity creates an identity with optional pre-bound name and path.
func NewIdentity(name, path string) *Identity {
	return &Identity{name: name, path: path}
}

// Name returns the bound project name, or empty if unbound.
func (i *Identity) Name() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.name
}

// Path returns the bound project path, or empty if unbound.
func (i *Identity) Path() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.path
}

// SetPath updates the bound project path after a workspace rename.
func (i *Identity) SetPath(path string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.path = path
}
