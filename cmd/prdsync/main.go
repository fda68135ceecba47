// Prdsync reconciles a free-text requirement with a project's structured
// PRD documents.
//
// One invocation runs one reconciliation cycle against the configured
// workspace: the requirement is classified as bug report or feature
// request, folded into every related existing PRD, or turned into a brand
// new PRD when nothing matches.
//
// Configuration is loaded from ~/.config/prdsync/config.yaml and overridden
// by environment variables. See internal/config for details.
//
// Usage:
//
//	# Run a reconciliation cycle
//	prdsync run
//
//	# Use an explicit config file
//	prdsync run --config ~/.config/prdsync/staging.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/prdsync/internal/artifacts"
	"github.com/fyrsmithlabs/prdsync/internal/config"
	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/oracle"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
	"github.com/fyrsmithlabs/prdsync/internal/project"
	"github.com/fyrsmithlabs/prdsync/internal/reconcile"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prdsync",
	Short: "Reconcile a requirement with the project's PRD documents",
	Long: `prdsync reconciles an incoming free-text requirement with the project's
existing Product Requirement Documents. Bug reports are rerouted to the
bug-fix workflow; feature requests are merged into related PRDs or turned
into a new one.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one reconciliation cycle",
	RunE:  runReconcile,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prdsync %s (commit %s, built %s)\n", version, gitCommit, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/prdsync/config.yaml)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// runReconcile wires the components and executes one run.
func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logging.WithLogger(ctx, logger)

	orch, err := buildOrchestrator(cfg, logger)
	if err != nil {
		return err
	}

	result, err := orch.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printResult(result)
	return nil
}

// newLogger translates the loaded config into the logging package's config.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logCfg := logging.NewDefaultConfig()

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	logCfg.Level = level
	logCfg.Format = cfg.Logging.Format
	logCfg.Output.OTEL = cfg.Logging.OTEL

	return logging.NewLogger(logCfg, nil)
}

// buildOrchestrator constructs the full component graph from config.
func buildOrchestrator(cfg *config.Config, logger *logging.Logger) (*reconcile.Orchestrator, error) {
	docs, err := docstore.NewFileStore(cfg.Workspace.Path, cfg.Workspace.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open docs collection: %w", err)
	}
	prds, err := docstore.NewFileStore(cfg.Workspace.Path, cfg.Workspace.PRDsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open PRDs collection: %w", err)
	}

	oracleClient, err := oracle.NewClient(cfg.Oracle)
	if err != nil {
		return nil, fmt.Errorf("failed to create oracle client: %w", err)
	}

	identity := project.NewIdentity(cfg.Project.Name, cfg.Project.Path)
	rebinder := project.NewDirRebinder(cfg.Project.Path)
	resolver := project.NewResolver(identity, rebinder, logger)

	format := prd.Format(cfg.Output.Format)

	var renderer artifacts.Renderer
	if cfg.Artifacts.MermaidPath != "" {
		renderer = artifacts.NewMermaidRenderer(cfg.Artifacts.MermaidPath)
	}
	charts := artifacts.NewChartWriter(renderer,
		filepath.Join(cfg.Workspace.Path, filepath.FromSlash(cfg.Artifacts.ChartsDir)), logger)

	var exporter *artifacts.Exporter
	if cfg.Artifacts.ExportDir != "" {
		exportStore, err := docstore.NewFileStore(cfg.Workspace.Path, cfg.Artifacts.ExportDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open export collection: %w", err)
		}
		exporter = artifacts.NewExporter(exportStore, logger)
	}

	return reconcile.NewOrchestrator(reconcile.Options{
		Docs:            docs,
		PRDs:            prds,
		Router:          reconcile.NewRouter(oracleClient, logger),
		Classifier:      reconcile.NewClassifier(oracleClient, logger),
		Merger:          reconcile.NewMerger(oracleClient, identity, resolver, logger),
		Generator:       reconcile.NewGenerator(oracleClient, format, cfg.Output.SearchContext, identity, resolver, logger),
		Format:          format,
		RequirementName: cfg.Workspace.RequirementFile,
		BugfixName:      cfg.Workspace.BugfixFile,
		Workers:         cfg.Scan.Workers,
		Charts:          charts,
		Exporter:        exporter,
		Logger:          logger,
	})
}

// printResult writes a human summary of the run outcome to stdout.
func printResult(result *reconcile.Result) {
	if result.IsBugRoute() {
		fmt.Printf("Requirement routed as bug report: %s\n", result.BugFix.Name)
		return
	}

	names := make([]string, 0, len(result.Changes))
	for name := range result.Changes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Changed %d PRD document(s):\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}
