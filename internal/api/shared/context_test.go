package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	withTrace := SetTraceID(ctx)
	traceID := GetTraceID(withTrace)
	assert.Len(t, traceID, 32)
	assert.True(t, ValidTraceID(traceID))
	assert.Empty(t, GetTraceID(ctx), "original context is unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestValidTraceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"0123456789ABCDEF0123456789ABCDEF", true},
		{"0123456789abcdef", false},
		{"zz23456789abcdef0123456789abcdef", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTraceID(tt.id), tt.id)
	}
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	t.Parallel()

	const iterations = 1000
	seen := make(map[string]bool, iterations)
	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		require.Len(t, id, 32)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestFallbackTraceID(t *testing.T) {
	t.Parallel()

	id := generateFallbackTraceID()
	assert.Len(t, id, 32)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)
}
