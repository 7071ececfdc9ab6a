package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the type of keys this package stores in a context.
type ContextKey string

// Context keys and trace ID settings
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters

	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// The ID ties log lines and error responses for one request together.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, generateTraceID())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// ValidTraceID reports whether id looks like a trace ID this service issues:
// TraceIDLength bytes, hex encoded.
func ValidTraceID(id string) bool {
	// Two hex characters per byte
	if len(id) != TraceIDLength*2 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// generateTraceID returns a random 32-character hex string. If crypto/rand
// fails it falls back to a time-derived value, never a static one.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		// Log detailed error with context
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"bytes_requested", TraceIDLength,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// generateFallbackTraceID builds a trace ID from the clock when crypto/rand
// is unavailable. It is predictable but still unique per request.
func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)
	now := time.Now()

	// First 8 bytes: nanosecond timestamp, ordered chronologically
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))

	// Next 4 bytes: sub-second component, separating IDs minted in the
	// same second
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(now.Nanosecond()))

	// Last 4 bytes: Unix seconds
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(now.Unix()))
	return hex.EncodeToString(fallbackID)
}
