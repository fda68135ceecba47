package oracle

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/fyrsmithlabs/prdsync/internal/oracle"

// Metrics for oracle requests
var (
	requestCounter  metric.Int64Counter
	errorCounter    metric.Int64Counter
	requestDuration metric.Float64Histogram
	decisionCounter metric.Int64Counter
)

// initMetrics initializes OpenTelemetry metrics for the oracle client.
// This is called once during package initialization.
func initMetrics() {
	meter := otel.Meter(instrumentationName)

	var err error

	requestCounter, err = meter.Int64Counter(
		"prdsync.oracle.requests",
		metric.WithDescription("Total number of oracle requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create request counter: %v", err))
	}

	errorCounter, err = meter.Int64Counter(
		"prdsync.oracle.errors",
		metric.WithDescription("Number of failed oracle requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create error counter: %v", err))
	}

	requestDuration, err = meter.Float64Histogram(
		"prdsync.oracle.request_duration",
		metric.WithDescription("Duration of oracle requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create request duration histogram: %v", err))
	}

	decisionCounter, err = meter.Int64Counter(
		"prdsync.oracle.decisions",
		metric.WithDescription("YES/NO/unknown decisions decoded from oracle responses"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create decision counter: %v", err))
	}
}

func init() {
	initMetrics()
}

// CountDecision records a decoded decision for observability. check names
// the decision site ("bugfix", "relevance").
func CountDecision(ctx context.Context, check string, d Decision) {
	decisionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("check", check),
		attribute.String("decision", d.String()),
	))
}
