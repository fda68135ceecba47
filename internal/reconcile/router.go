package reconcile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/oracle"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// Router classifies requirement text as bug report versus feature request.
type Router struct {
	oracle oracle.Oracle
	logger *logging.Logger
}

// NewRouter creates a bug-report router.
func NewRouter(o oracle.Oracle, logger *logging.Logger) *Router {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Router{oracle: o, logger: logger.Named("router")}
}

// IsBugReport reports whether the text describes a bug rather than a
// feature request.
//
// Empty or whitespace-only text means there is nothing to classify and
// returns false without consulting the oracle. Ambiguous answers decode as
// false (fail-closed).
func (r *Router) IsBugReport(ctx context.Context, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	response, err := r.oracle.Ask(ctx, prd.BugReportPrompt(text))
	if err != nil {
		return false, err
	}

	decision := oracle.ParseDecision(response)
	oracle.CountDecision(ctx, "bugfix", decision)
	r.logger.Info(ctx, "bug classification",
		zap.Stringer("decision", decision),
		zap.String("answer", response),
	)

	return decision == oracle.DecisionYes, nil
}
