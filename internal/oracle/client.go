package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/prdsync/internal/config"
)

// Client implements Oracle over a langchaingo model with request pacing.
type Client struct {
	model       llms.Model
	provider    string
	temperature float64
	limiter     *rate.Limiter
	sem         chan struct{}
}

// NewClient creates an oracle client for the configured provider.
func NewClient(cfg config.OracleConfig) (*Client, error) {
	model, err := newModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s model: %w", cfg.Provider, err)
	}
	return newClientWithModel(model, cfg), nil
}

// newClientWithModel wires pacing around an existing model. Split out so
// tests can inject a fake model without provider credentials.
func newClientWithModel(model llms.Model, cfg config.OracleConfig) *Client {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Client{
		model:       model,
		provider:    cfg.Provider,
		temperature: cfg.Temperature,
		limiter:     limiter,
		sem:         make(chan struct{}, maxConcurrent),
	}
}

// newModel constructs the langchaingo backend for the configured provider.
func newModel(cfg config.OracleConfig) (llms.Model, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithToken(cfg.APIKey.Value())}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...)

	case config.ProviderAnthropic:
		opts := []anthropic.Option{anthropic.WithToken(cfg.APIKey.Value())}
		if cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(cfg.Model))
		}
		return anthropic.New(opts...)

	default:
		return nil, fmt.Errorf("unknown oracle provider: %q", cfg.Provider)
	}
}

// Ask sends a prompt and returns the raw completion text.
//
// The call blocks until both the concurrency gate and the rate limiter
// admit it, or until ctx is done.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	attrs := metric.WithAttributes(attribute.String("provider", c.provider))
	requestCounter.Add(ctx, 1, attrs)

	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.temperature),
	)
	requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		errorCounter.Add(ctx, 1, attrs)
		return "", fmt.Errorf("oracle request failed: %w", err)
	}

	return response, nil
}
