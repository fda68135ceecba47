package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fyrsmithlabs/prdsync/internal/config"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "console format is valid",
			mutate:  func(c *Config) { c.Format = "console" },
			wantErr: false,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "xml" },
			wantErr: true,
		},
		{
			name: "no outputs",
			mutate: func(c *Config) {
				c.Output.Stdout = false
				c.Output.OTEL = false
			},
			wantErr: true,
		},
		{
			name:    "negative caller skip",
			mutate:  func(c *Config) { c.Caller.Skip = -1 },
			wantErr: true,
		},
		{
			name:    "invalid redaction pattern",
			mutate:  func(c *Config) { c.Redaction.Patterns = []string{"[unclosed"} },
			wantErr: true,
		},
		{
			name:    "empty field value",
			mutate:  func(c *Config) { c.Fields = map[string]string{"service": ""} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(NewDefaultConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.True(t, logger.Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Enabled(zapcore.DebugLevel))
}

func TestNewLoggerInvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Format = "xml"

	_, err := NewLogger(cfg, nil)
	require.Error(t, err)
}

func TestContextFields(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ContextFields(ctx))

	ctx = WithRunID(ctx, "run-123")
	ctx = WithDocument(ctx, "prd-1.json")

	fields := ContextFields(ctx)
	require.Len(t, fields, 2)
	assert.Equal(t, "run.id", fields[0].Key)
	assert.Equal(t, "run-123", fields[0].String)
	assert.Equal(t, "document", fields[1].Key)
	assert.Equal(t, "prd-1.json", fields[1].String)

	assert.Equal(t, "run-123", RunIDFromContext(ctx))
	assert.Equal(t, "prd-1.json", DocumentFromContext(ctx))
}

func TestLoggerFromContext(t *testing.T) {
	logger := NewNop()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Missing logger falls back to nop
	assert.NotNil(t, FromContext(context.Background()))
}

func TestContextFieldsEmittedInLogs(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := &Logger{zap: zap.New(core), config: NewDefaultConfig()}

	ctx := WithDocument(WithRunID(context.Background(), "run-9"), "prd-2.json")
	logger.Info(ctx, "rewrote PRD")

	entries := observed.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "run-9", fields["run.id"])
	assert.Equal(t, "prd-2.json", fields["document"])
}

func TestRedactingEncoderFields(t *testing.T) {
	base := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	enc, err := NewRedactingEncoder(base, RedactionConfig{
		Enabled: true,
		Fields:  []string{"api_key", "token"},
		Patterns: []string{
			`(?i)bearer\s+\S+`,
		},
	})
	require.NoError(t, err)

	enc.AddString("api_key", "sk-verysecret")
	enc.AddString("Token", "abc")
	enc.AddString("header", "Bearer abc123")
	enc.AddString("plain", "visible")

	buf, err := enc.EncodeEntry(zapcore.Entry{Message: "configured"}, nil)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `"api_key":"[REDACTED]"`)
	assert.Contains(t, out, `"Token":"[REDACTED]"`)
	assert.Contains(t, out, `"header":"[REDACTED:pattern]"`)
	assert.Contains(t, out, `"plain":"visible"`)
	assert.NotContains(t, out, "sk-verysecret")
	assert.NotContains(t, out, "Bearer abc123")
}

func TestRedactingEncoderInvalidPattern(t *testing.T) {
	_, err := NewRedactingEncoder(nil, RedactionConfig{
		Enabled:  true,
		Patterns: []string{"[unclosed"},
	})
	require.Error(t, err)
}

func TestSecretField(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("configured", Secret("api_key", config.Secret("sk-abc")))

	entries := observed.All()
	require.Len(t, entries, 1)
	nested, ok := entries[0].ContextMap()["api_key"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "[REDACTED:6]", nested["api_key"])
}

func TestRedactedString(t *testing.T) {
	field := RedactedString("token", "supersecret")
	assert.Equal(t, "[REDACTED:11]", field.String)
}
