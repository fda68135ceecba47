package reconcile

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fyrsmithlabs/prdsync/internal/artifacts"
	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// Options configures an Orchestrator.
type Options struct {
	// Docs is the collection holding the requirement and bug-report
	// documents.
	Docs docstore.Store

	// PRDs is the collection holding the structured PRD documents.
	PRDs docstore.Store

	Router     *Router
	Classifier *Classifier
	Merger     *Merger
	Generator  *Generator

	// Format is the storage wire format for PRD documents.
	Format prd.Format

	// RequirementName and BugfixName are the document names within Docs.
	RequirementName string
	BugfixName      string

	// Workers bounds the parallel PRD scan. Values below 1 mean serial.
	Workers int

	// Charts and Exporter are optional best-effort side effects.
	Charts   *artifacts.ChartWriter
	Exporter *artifacts.Exporter

	Logger *logging.Logger
}

// Orchestrator composes the reconciliation components into the end-to-end
// flow.
type Orchestrator struct {
	opts   Options
	logger *logging.Logger
}

// NewOrchestrator validates options and creates an orchestrator.
func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if opts.Docs == nil || opts.PRDs == nil {
		return nil, fmt.Errorf("document stores are required")
	}
	if opts.Router == nil || opts.Classifier == nil || opts.Merger == nil || opts.Generator == nil {
		return nil, fmt.Errorf("all reconciliation components are required")
	}
	if !opts.Format.Valid() {
		return nil, fmt.Errorf("unknown format %q", opts.Format)
	}
	if opts.RequirementName == "" || opts.BugfixName == "" {
		return nil, fmt.Errorf("requirement and bugfix document names are required")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Orchestrator{opts: opts, logger: logger.Named("reconcile")}, nil
}

// Run executes one reconciliation cycle.
//
// The run returns either a BugFixRecord or a ChangeSet of created/merged
// PRDs. An unreadable requirement document is fatal. One PRD branch's
// classify/merge/save failure is logged and does not prevent evaluating the
// others.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	ctx = logging.WithRunID(ctx, uuid.New().String()[:8])

	requirement, err := o.opts.Docs.Get(ctx, o.opts.RequirementName)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement document: %w", err)
	}

	isBug, err := o.opts.Router.IsBugReport(ctx, requirement.Content)
	if err != nil {
		return nil, fmt.Errorf("bug classification failed: %w", err)
	}

	if isBug {
		return o.routeAsBug(ctx, requirement)
	}

	// Clear any stale bug-report entry from a previous cycle
	if err := o.opts.Docs.Delete(ctx, o.opts.BugfixName); err != nil {
		return nil, fmt.Errorf("failed to clear stale bug report: %w", err)
	}

	existing, err := o.opts.PRDs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate PRDs: %w", err)
	}

	changes := o.scan(ctx, requirement, existing)

	// Generate only when nothing merged: zero existing PRDs, or none related
	if len(changes) == 0 {
		name, document, err := o.generate(ctx, requirement)
		if err != nil {
			return nil, err
		}
		changes[name] = document
	}

	for name, document := range changes {
		o.sideEffects(ctx, name, document)
	}

	return &Result{Changes: changes}, nil
}

// routeAsBug persists the requirement under the bug-report key, clears the
// requirement document, and skips all PRD logic.
func (o *Orchestrator) routeAsBug(ctx context.Context, requirement *docstore.Document) (*Result, error) {
	if err := o.opts.Docs.Save(ctx, o.opts.BugfixName, requirement.Content); err != nil {
		return nil, fmt.Errorf("failed to save bug report: %w", err)
	}
	if err := o.opts.Docs.Save(ctx, o.opts.RequirementName, ""); err != nil {
		return nil, fmt.Errorf("failed to clear requirement document: %w", err)
	}

	o.logger.Info(ctx, "requirement routed as bug report",
		zap.String("bugfix", o.opts.BugfixName))

	return &Result{BugFix: &BugFixRecord{Name: o.opts.BugfixName}}, nil
}

// scan evaluates every existing PRD independently: classify, then merge and
// persist when related. The loop never stops at the first match, and one
// document's failure does not abort the others.
func (o *Orchestrator) scan(ctx context.Context, requirement *docstore.Document, existing []*docstore.Document) ChangeSet {
	changes := make(ChangeSet)
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(o.opts.Workers)

	for _, doc := range existing {
		doc := doc
		g.Go(func() error {
			dctx := logging.WithDocument(ctx, doc.Name)

			related, err := o.opts.Classifier.IsRelated(dctx, requirement, doc)
			if err != nil {
				o.logger.Warn(dctx, "relevance check failed, skipping PRD", zap.Error(err))
				return nil
			}
			if !related {
				return nil
			}

			merged, err := o.opts.Merger.Merge(dctx, requirement, doc)
			if err != nil {
				o.logger.Error(dctx, "merge failed, skipping PRD", zap.Error(err))
				return nil
			}

			content, err := merged.Encode(o.opts.Format)
			if err != nil {
				o.logger.Error(dctx, "failed to encode merged PRD", zap.Error(err))
				return nil
			}
			if err := o.opts.PRDs.Save(dctx, doc.Name, content); err != nil {
				o.logger.Error(dctx, "failed to persist merged PRD", zap.Error(err))
				return nil
			}

			mu.Lock()
			changes[doc.Name] = merged
			mu.Unlock()

			o.logger.Info(dctx, "rewrote PRD", zap.String("prd", doc.Name))
			return nil
		})
	}

	// Workers never return errors; Wait is a join
	_ = g.Wait()

	return changes
}

// generate creates and persists a brand-new PRD.
func (o *Orchestrator) generate(ctx context.Context, requirement *docstore.Document) (string, *prd.PRD, error) {
	name, document, err := o.opts.Generator.Generate(ctx, requirement)
	if err != nil {
		return "", nil, fmt.Errorf("PRD generation failed: %w", err)
	}

	content, err := document.Encode(o.opts.Format)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode generated PRD: %w", err)
	}
	if err := o.opts.PRDs.Save(ctx, name, content); err != nil {
		return "", nil, fmt.Errorf("failed to persist generated PRD: %w", err)
	}

	o.logger.Info(ctx, "created new PRD", zap.String("prd", name))
	return name, document, nil
}

// sideEffects runs the best-effort artifact outputs for a changed PRD.
func (o *Orchestrator) sideEffects(ctx context.Context, name string, document *prd.PRD) {
	if o.opts.Charts != nil {
		o.opts.Charts.Write(ctx, name, document.CompetitiveQuadrantChart)
	}
	if o.opts.Exporter != nil {
		o.opts.Exporter.Export(ctx, name, document)
	}
}
