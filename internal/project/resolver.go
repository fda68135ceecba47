package project

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// Resolver binds the project identity from generated PRD candidates.
type Resolver struct {
	identity *Identity
	rebinder Rebinder
	logger   *logging.Logger
}

// NewResolver creates a resolver over the given run identity.
func NewResolver(identity *Identity, rebinder Rebinder, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		identity: identity,
		rebinder: rebinder,
		logger:   logger.Named("project"),
	}
}

// Resolve applies the naming precedence to a candidate:
//
//  1. Path and name already bound: nothing to do.
//  2. Path bound, name unbound: the name is the path's last segment. The
//     candidate is not consulted and the rename side effect does not fire.
//  3. Name unbound: take the candidate's project-name field (or extract it
//     from raw text) and bind it.
//  4. A name newly bound via step 3 triggers the workspace rename exactly
//     once.
//
// Repeated calls after a successful bind are no-ops. Rebind failures are
// logged, not propagated: the bound name stays usable for templating even
// when the outward rename could not be applied.
func (r *Resolver) Resolve(ctx context.Context, candidate prd.Generated) {
	r.identity.mu.Lock()

	if r.identity.name != "" {
		r.identity.mu.Unlock()
		return
	}

	if r.identity.path != "" {
		r.identity.name = filepath.Base(r.identity.path)
		name := r.identity.name
		r.identity.mu.Unlock()
		r.logger.Debug(ctx, "derived project name from path", zap.String("project", name))
		return
	}

	name := candidate.ProjectName()
	if name == "" {
		r.identity.mu.Unlock()
		r.logger.Debug(ctx, "candidate carries no project name, leaving identity unbound")
		return
	}
	r.identity.name = name
	r.identity.mu.Unlock()

	r.logger.Info(ctx, "bound project name", zap.String("project", name))

	if r.rebinder == nil {
		return
	}
	newPath, err := r.rebinder.Rebind(ctx, name)
	if err != nil {
		r.logger.Warn(ctx, "workspace rename failed", zap.String("project", name), zap.Error(err))
		return
	}
	if newPath != "" {
		r.identity.SetPath(newPath)
	}
}
