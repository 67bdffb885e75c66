// Package logger provides structured logging for the application.
//
// It builds on the standard library's log/slog package, emitting JSON
// records at a configurable level, and carries request-scoped loggers
// through context.Context.
package logger
