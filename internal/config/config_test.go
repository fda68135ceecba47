package config

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
workspace:
  path: /tmp/workspace
`))
	require.NoError(t, err)

	assert.Equal(t, "docs", cfg.Workspace.DocsDir)
	assert.Equal(t, "docs/prds", cfg.Workspace.PRDsDir)
	assert.Equal(t, "requirement.txt", cfg.Workspace.RequirementFile)
	assert.Equal(t, "bugfix.txt", cfg.Workspace.BugfixFile)
	assert.Equal(t, FormatMarkdown, cfg.Output.Format)
	assert.Equal(t, ProviderOpenAI, cfg.Oracle.Provider)
	assert.Equal(t, 60, cfg.Oracle.RequestsPerMinute)
	assert.Equal(t, 4, cfg.Oracle.MaxConcurrent)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, "resources/competitive_analysis", cfg.Artifacts.ChartsDir)
	assert.Equal(t, "resources/prd", cfg.Artifacts.ExportDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load([]byte(`
workspace:
  path: /data/workspace
  docs_dir: documents
  requirement_file: incoming.txt
output:
  format: json
  search_context: "competitor search results"
project:
  name: snake_game
  path: /data/projects/snake_game
oracle:
  provider: anthropic
  model: claude-sonnet-4-5
  api_key: super-secret
  requests_per_minute: 30
  max_concurrent: 2
  temperature: 0.3
scan:
  workers: 8
logging:
  level: debug
  format: console
`))
	require.NoError(t, err)

	assert.Equal(t, "/data/workspace", cfg.Workspace.Path)
	assert.Equal(t, "documents", cfg.Workspace.DocsDir)
	assert.Equal(t, "incoming.txt", cfg.Workspace.RequirementFile)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "competitor search results", cfg.Output.SearchContext)
	assert.Equal(t, "snake_game", cfg.Project.Name)
	assert.Equal(t, ProviderAnthropic, cfg.Oracle.Provider)
	assert.Equal(t, "super-secret", cfg.Oracle.APIKey.Value())
	assert.Equal(t, 30, cfg.Oracle.RequestsPerMinute)
	assert.Equal(t, 0.3, cfg.Oracle.Temperature)
	assert.Equal(t, 8, cfg.Scan.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing workspace path",
			yaml:    `output: {format: json}`,
			wantErr: "workspace.path is required",
		},
		{
			name: "unknown format",
			yaml: `
workspace: {path: /tmp/ws}
output: {format: yaml}
`,
			wantErr: "output.format",
		},
		{
			name: "unknown provider",
			yaml: `
workspace: {path: /tmp/ws}
oracle: {provider: llamafarm}
`,
			wantErr: "oracle.provider",
		},
		{
			name: "temperature out of range",
			yaml: `
workspace: {path: /tmp/ws}
oracle: {temperature: 1.5}
`,
			wantErr: "oracle.temperature",
		},
		{
			name: "negative workers",
			yaml: `
workspace: {path: /tmp/ws}
scan: {workers: -1}
`,
			wantErr: "scan.workers",
		},
		{
			name: "bad log level",
			yaml: `
workspace: {path: /tmp/ws}
logging: {level: loud}
`,
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load([]byte("workspace: [not: closed"))
	require.Error(t, err)
}

func TestSecretRedaction(t *testing.T) {
	secret := Secret("sk-abc123")

	assert.Equal(t, "[REDACTED]", secret.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", secret))
	assert.Equal(t, "Secret([REDACTED])", fmt.Sprintf("%#v", secret))
	assert.Equal(t, "sk-abc123", secret.Value())
	assert.True(t, secret.IsSet())

	data, err := json.Marshal(secret)
	require.NoError(t, err)
	assert.Equal(t, `"[REDACTED]"`, string(data))

	empty := Secret("")
	assert.Equal(t, "", empty.String())
	assert.False(t, empty.IsSet())
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestSecretUnmarshalText(t *testing.T) {
	var s Secret
	require.NoError(t, s.UnmarshalText([]byte("raw-value")))
	assert.Equal(t, "raw-value", s.Value())
}

func TestDuration(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Duration())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	require.Error(t, d.UnmarshalText([]byte("-5s")))
	require.Error(t, d.UnmarshalText([]byte("not a duration")))
}
