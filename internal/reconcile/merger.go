package reconcile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/oracle"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
	"github.com/fyrsmithlabs/prdsync/internal/project"
)

// Merger folds a new requirement into an existing PRD by asking the oracle
// to regenerate the complete document.
type Merger struct {
	oracle   oracle.Oracle
	identity *project.Identity
	resolver *project.Resolver
	logger   *logging.Logger
}

// NewMerger creates a document merger.
//
// Merge responses are always the single-JSON-block shape regardless of the
// configured storage format; the merge prompt demands it.
func NewMerger(o oracle.Oracle, identity *project.Identity, resolver *project.Resolver, logger *logging.Logger) *Merger {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Merger{
		oracle:   o,
		identity: identity,
		resolver: resolver,
		logger:   logger.Named("merger"),
	}
}

// Merge regenerates the existing PRD with the requirement folded in. The
// caller persists the result under the existing document's name; content is
// replaced wholesale, never patched.
//
// The regenerated project-name field is fed to the identity resolver as a
// binding hint.
func (m *Merger) Merge(ctx context.Context, requirement, existing *docstore.Document) (*prd.PRD, error) {
	projectName := m.identity.Name()
	if projectName == "" && m.identity.Path() != "" {
		projectName = filepath.Base(m.identity.Path())
	}

	response, err := m.oracle.Ask(ctx, prd.MergePrompt(requirement.Content, existing.Content, projectName))
	if err != nil {
		return nil, fmt.Errorf("merge request for %s: %w", existing.Name, err)
	}

	merged, err := prd.ParseJSON(response)
	if err != nil {
		return nil, fmt.Errorf("merge response for %s: %w", existing.Name, err)
	}

	m.resolver.Resolve(ctx, prd.NewStructured(merged))
	return merged, nil
}
