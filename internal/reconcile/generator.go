package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/oracle"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
	"github.com/fyrsmithlabs/prdsync/internal/project"
)

// Generator produces a brand-new structured PRD from a requirement. It is
// used when no PRD exists yet, or when no existing PRD was found related.
type Generator struct {
	oracle        oracle.Oracle
	format        prd.Format
	searchContext string
	identity      *project.Identity
	resolver      *project.Resolver
	logger        *logging.Logger
}

// NewGenerator creates a document generator. searchContext is optional
// external search information embedded into the generation prompt.
func NewGenerator(o oracle.Oracle, format prd.Format, searchContext string, identity *project.Identity, resolver *project.Resolver, logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{
		oracle:        o,
		format:        format,
		searchContext: searchContext,
		identity:      identity,
		resolver:      resolver,
		logger:        logger.Named("generator"),
	}
}

// Generate asks the oracle for a full structured PRD and assigns it a newly
// allocated stable name. The generated project-name field is fed to the
// identity resolver.
func (g *Generator) Generate(ctx context.Context, requirement *docstore.Document) (string, *prd.PRD, error) {
	prompt := prd.GeneratePrompt(g.format, requirement.Content, g.searchContext, g.identity.Name())

	response, err := g.oracle.Ask(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("generation request: %w", err)
	}

	document, err := prd.Parse(g.format, response)
	if err != nil {
		return "", nil, fmt.Errorf("generation response: %w", err)
	}

	g.resolver.Resolve(ctx, prd.NewStructured(document))

	name := uuid.New().String() + g.format.Suffix()
	return name, document, nil
}
