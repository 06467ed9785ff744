package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records generation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordGeneration records one secret generation with duration and error status.
	RecordGeneration(ctx context.Context, meta SecretMeta, duration time.Duration, err error)
}

type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	charCount    metric.Int64Counter
	durationHist metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"secret.generate.total",
		metric.WithDescription("Total number of secret generations"),
		metric.WithUnit("{secret}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"secret.generate.errors",
		metric.WithDescription("Total number of failed secret generations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	charCount, err := meter.Int64Counter(
		"secret.generate.chars",
		metric.WithDescription("Total number of characters generated"),
		metric.WithUnit("{char}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"secret.generate.duration_ms",
		metric.WithDescription("Secret generation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		charCount:    charCount,
		durationHist: durationHist,
	}, nil
}

// RecordGeneration records metrics for one generation.
func (m *metricsImpl) RecordGeneration(ctx context.Context, meta SecretMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("secret.name", meta.Name))

	m.totalCount.Add(ctx, 1, opt)

	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	} else if meta.Length > 0 {
		m.charCount.Add(ctx, int64(meta.Length), opt)
	}

	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

type noopMetrics struct{}

func (m *noopMetrics) RecordGeneration(ctx context.Context, meta SecretMeta, duration time.Duration, err error) {
}
