// Package observe provides observability primitives for secret generation.
//
// It is a pure instrumentation library: it never sees secret values, only
// their names and lengths. The CLI wraps each generation with Middleware,
// which records a span, metrics, and a structured log line.
package observe
