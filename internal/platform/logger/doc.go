// Package logger provides structured logging for the service.
//
// It uses the standard library log/slog package with a JSON handler, a
// configurable level, and helpers for carrying a request-scoped logger in a
// context.Context.
package logger
