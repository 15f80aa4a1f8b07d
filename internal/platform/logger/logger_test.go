package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/agent-tasks/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Setup replaces the process-wide default logger, so these tests are not parallel.

func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriter(t *testing.T) {
	restoreDefault(t)

	buf := &TestLogBuffer{}
	logger, err := SetupWithWriter(config.ServerConfig{LogLevel: "info"}, buf)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Same(t, logger, slog.Default(), "Setup installs the logger as default")

	logger.Debug("hidden")
	logger.Info("visible", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "value", entries[0]["key"])
}

func TestSetupWithWriter_InvalidLevel(t *testing.T) {
	restoreDefault(t)

	buf := &TestLogBuffer{}
	logger, err := SetupWithWriter(config.ServerConfig{LogLevel: "verbose"}, buf)
	require.NoError(t, err)

	AssertLogContains(t, buf, "invalid log level configured")
	AssertLogContains(t, buf, `"configured_level":"verbose"`)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" Warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestContextLogger(t *testing.T) {
	_, custom := NewTestLogger(t)

	ctx := WithLogger(context.Background(), custom)
	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, custom, got)
	assert.Same(t, custom, FromContextOrDefault(ctx))

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background()))

	var nilLogger *slog.Logger
	assert.Same(t, slog.Default(), FromContextOrDefault(WithLogger(context.Background(), nilLogger)))
}
