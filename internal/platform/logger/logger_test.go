package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/kundli-api/internal/config"
	"github.com/phrazzld/kundli-api/internal/platform/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"Error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		level, ok := logger.ParseLevel(tt.name)
		assert.Equal(t, tt.level, level, tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
	}
}

func TestSetupReturnsLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "warn", Port: 8080})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestSetupWriterFiltersByLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l := logger.SetupWriter(buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "rule", "Sade Sati")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	logger.AssertLogField(t, buf, "rule", "Sade Sati")
}

func TestSetupWriterInvalidLevelFallsBackToInfo(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l := logger.SetupWriter(buf, "loud")

	l.Debug("hidden")
	l.Info("shown")
	logger.AssertLogContains(t, buf, `"msg":"shown"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))

	l, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l.With("trace_id", "abc"))
	logger.FromContext(ctx).Info("hello")

	logger.AssertLogField(t, buf, "trace_id", "abc")
}

func TestTestLogBuffer(t *testing.T) {
	t.Parallel()

	buf := &logger.TestLogBuffer{}
	_, err := buf.Write([]byte(`{"msg":"one"}` + "\n\n" + `{"msg":"two"}` + "\n"))
	require.NoError(t, err)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[1]["msg"])

	_, _ = buf.Write([]byte("not json\n"))
	_, err = buf.GetLogEntries()
	assert.Error(t, err)

	buf.Reset()
	assert.Empty(t, buf.String())
}
