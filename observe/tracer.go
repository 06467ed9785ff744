package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// SecretMeta describes a secret for telemetry purposes. It never carries
// the generated value.
type SecretMeta struct {
	Name   string // Environment key, e.g. JWT_SECRET (required)
	Length int    // Requested length in characters
}

// SpanName returns the deterministic span name for this secret.
// Format: secret.generate.<name>
func (m SecretMeta) SpanName() string {
	return "secret.generate." + m.Name
}

// Validate reports whether m can be used for telemetry.
func (m SecretMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingSecretName
	}
	return nil
}

// Tracer wraps OpenTelemetry tracing with per-secret span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a secret generation.
	StartSpan(ctx context.Context, meta SecretMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with secret metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta SecretMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("secret.name", meta.Name),
		attribute.Int("secret.length", meta.Length),
		attribute.Bool("secret.error", false), // updated in EndSpan
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("secret.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta SecretMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
