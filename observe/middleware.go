package observe

import (
	"context"
	"fmt"
	"time"
)

// GenerateFunc produces the value of one secret.
type GenerateFunc func(ctx context.Context, meta SecretMeta) (string, error)

// Middleware wraps secret generation with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe GenerateFunc.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
//   - Secrets: the returned value is passed through and never recorded.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a GenerateFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn GenerateFunc) GenerateFunc {
	return func(ctx context.Context, meta SecretMeta) (string, error) {
		if err := meta.Validate(); err != nil {
			return "", err
		}

		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		value, err := fn(ctx, meta)
		if err == nil && meta.Length > 0 && len(value) != meta.Length {
			err = fmt.Errorf("generated %d characters, want %d", len(value), meta.Length)
			value = ""
		}

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordGeneration(ctx, meta, duration, err)

		log := m.logger.WithSecret(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			log.Error(ctx, "secret generation failed", fields...)
		} else {
			log.Info(ctx, "secret generated", fields...)
		}

		return value, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
