package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for this package's context keys.
type contextKey int

// loggerKey carries the request-scoped logger.
const loggerKey contextKey = iota

// WithContext returns a copy of ctx that carries the given logger.
// Code further down the call chain retrieves it with FromContextOrDefault,
// picking up any attributes (trace ID, component) attached upstream.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContextOrDefault returns the logger carried by ctx. When ctx carries
// none it falls back to the provided logger, and as a last resort to
// slog.Default().
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
