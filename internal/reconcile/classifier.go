package reconcile

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/oracle"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// Classifier decides whether a requirement is topically related to an
// existing PRD.
type Classifier struct {
	oracle oracle.Oracle
	logger *logging.Logger
}

// NewClassifier creates a relevance classifier.
func NewClassifier(o oracle.Oracle, logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Classifier{oracle: o, logger: logger.Named("classifier")}
}

// IsRelated reports whether the requirement pertains to the existing PRD's
// subject matter. Ambiguous answers decode as false (fail-closed).
func (c *Classifier) IsRelated(ctx context.Context, requirement, existing *docstore.Document) (bool, error) {
	response, err := c.oracle.Ask(ctx, prd.RelevancePrompt(requirement.Content, existing.Content))
	if err != nil {
		return false, err
	}

	decision := oracle.ParseDecision(response)
	oracle.CountDecision(ctx, "relevance", decision)
	c.logger.Info(ctx, "relevance classification",
		zap.String("requirement", requirement.Name),
		zap.String("prd", existing.Name),
		zap.Stringer("decision", decision),
		zap.String("answer", response),
	)

	return decision == oracle.DecisionYes, nil
}
