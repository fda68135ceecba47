// Package config provides configuration loading for prdsync.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Recognized output formats for PRD generation and parsing.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Recognized oracle providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is the top-level prdsync configuration.
type Config struct {
	Workspace WorkspaceConfig `koanf:"workspace"`
	Output    OutputConfig    `koanf:"output"`
	Project   ProjectConfig   `koanf:"project"`
	Oracle    OracleConfig    `koanf:"oracle"`
	Scan      ScanConfig      `koanf:"scan"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// WorkspaceConfig locates the document workspace on disk.
type WorkspaceConfig struct {
	// Path is the workspace root. All collections are relative to it.
	Path string `koanf:"path"`

	// DocsDir holds the requirement and bug-report documents.
	DocsDir string `koanf:"docs_dir"`

	// PRDsDir holds the structured PRD documents.
	PRDsDir string `koanf:"prds_dir"`

	// RequirementFile is the requirement document name within DocsDir.
	RequirementFile string `koanf:"requirement_file"`

	// BugfixFile is the bug-report document name within DocsDir.
	BugfixFile string `koanf:"bugfix_file"`
}

// OutputConfig selects the PRD wire format and optional search context.
type OutputConfig struct {
	// Format is "json" (single [CONTENT] block) or "markdown" (## sections).
	Format string `koanf:"format"`

	// SearchContext is prepended to generation prompts as external search
	// information. Empty means no search section.
	SearchContext string `koanf:"search_context"`
}

// ProjectConfig carries optional pre-bound project identity.
type ProjectConfig struct {
	Name string `koanf:"name"`
	Path string `koanf:"path"`
}

// OracleConfig configures the text-generation oracle client.
type OracleConfig struct {
	Provider          string  `koanf:"provider"`
	Model             string  `koanf:"model"`
	BaseURL           string  `koanf:"base_url"`
	APIKey            Secret  `koanf:"api_key"`
	RequestsPerMinute int     `koanf:"requests_per_minute"`
	MaxConcurrent     int     `koanf:"max_concurrent"`
	Temperature       float64 `koanf:"temperature"`
}

// ScanConfig bounds the PRD scan worker pool.
type ScanConfig struct {
	Workers int `koanf:"workers"`
}

// ArtifactsConfig controls best-effort side-effect outputs.
type ArtifactsConfig struct {
	// MermaidPath is the mermaid CLI binary used to render quadrant charts.
	// Empty disables rendering.
	MermaidPath string `koanf:"mermaid_path"`

	// ChartsDir receives rendered competitive-analysis charts.
	ChartsDir string `koanf:"charts_dir"`

	// ExportDir receives exported PRD documents. Empty disables export.
	ExportDir string `koanf:"export_dir"`
}

// LoggingConfig is translated into the logging package's config at startup.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	OTEL   bool   `koanf:"otel"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Workspace.DocsDir == "" {
		cfg.Workspace.DocsDir = "docs"
	}
	if cfg.Workspace.PRDsDir == "" {
		cfg.Workspace.PRDsDir = filepath.Join("docs", "prds")
	}
	if cfg.Workspace.RequirementFile == "" {
		cfg.Workspace.RequirementFile = "requirement.txt"
	}
	if cfg.Workspace.BugfixFile == "" {
		cfg.Workspace.BugfixFile = "bugfix.txt"
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatMarkdown
	}

	if cfg.Oracle.Provider == "" {
		cfg.Oracle.Provider = ProviderOpenAI
	}
	if cfg.Oracle.RequestsPerMinute == 0 {
		cfg.Oracle.RequestsPerMinute = 60
	}
	if cfg.Oracle.MaxConcurrent == 0 {
		cfg.Oracle.MaxConcurrent = 4
	}

	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 4
	}

	if cfg.Artifacts.ChartsDir == "" {
		cfg.Artifacts.ChartsDir = filepath.Join("resources", "competitive_analysis")
	}
	if cfg.Artifacts.ExportDir == "" {
		cfg.Artifacts.ExportDir = filepath.Join("resources", "prd")
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Workspace.Path == "" {
		return fmt.Errorf("workspace.path is required")
	}

	switch c.Output.Format {
	case FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatJSON, FormatMarkdown, c.Output.Format)
	}

	switch c.Oracle.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("oracle.provider must be %q or %q, got %q", ProviderOpenAI, ProviderAnthropic, c.Oracle.Provider)
	}

	if c.Oracle.RequestsPerMinute < 0 {
		return fmt.Errorf("oracle.requests_per_minute must be >= 0, got %d", c.Oracle.RequestsPerMinute)
	}
	if c.Oracle.MaxConcurrent < 1 {
		return fmt.Errorf("oracle.max_concurrent must be >= 1, got %d", c.Oracle.MaxConcurrent)
	}
	if c.Oracle.Temperature < 0 || c.Oracle.Temperature > 1 {
		return fmt.Errorf("oracle.temperature must be in [0, 1], got %v", c.Oracle.Temperature)
	}

	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be >= 1, got %d", c.Scan.Workers)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", c.Logging.Format)
	}

	return nil
}
