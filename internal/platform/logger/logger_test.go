package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		ok       bool
	}{
		{input: "debug", expected: slog.LevelDebug, ok: true},
		{input: "INFO", expected: slog.LevelInfo, ok: true},
		{input: " warn ", expected: slog.LevelWarn, ok: true},
		{input: "warning", expected: slog.LevelWarn, ok: true},
		{input: "error", expected: slog.LevelError, ok: true},
		{input: "verbose", expected: slog.LevelInfo, ok: false},
		{input: "", expected: slog.LevelInfo, ok: false},
	}

	for _, tt := range tests {
		level, ok := logger.ParseLevel(tt.input)
		assert.Equal(t, tt.expected, level, "level for %q", tt.input)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.input)
	}
}

// Setup replaces the process default logger, so these tests do not run in parallel.
func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())

	l.Info("hidden message")
	slog.Warn("visible message", "full_name", "John Doe")

	assert.NotContains(t, buf.String(), "hidden message")
	logger.AssertLogContains(t, buf, "visible message")
	logger.AssertLogField(t, buf, "full_name", "J*** D***")
	logger.AssertLogField(t, buf, "level", "WARN")
}

func TestSetup_InvalidLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "chatty", Output: buf})
	require.NoError(t, err)

	l.Debug("debug is below the default level")

	logger.AssertLogContains(t, buf, "invalid log level configured")
	logger.AssertLogField(t, buf, "configured_level", "chatty")
	assert.NotContains(t, buf.String(), "debug is below the default level")
}

func TestPIIHandler(t *testing.T) {
	t.Parallel()

	l, buf := logger.NewTestLogger(t)

	l.With("email", "ada@example.com").Info("reading created",
		"full_name", "Ada Lovelace",
		"birth_day", 10,
		"birth_month", 12,
		"kind", "destiny",
		"error", errors.New("dial postgres://app:pw@db:5432/x failed"),
		slog.Group("request", slog.String("name", "Grace Hopper")),
	)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "A*** L***", entry["full_name"])
	assert.Equal(t, "[REDACTED]", entry["birth_day"])
	assert.Equal(t, "[REDACTED]", entry["birth_month"])
	assert.Equal(t, "[REDACTED]", entry["email"])
	assert.Equal(t, "destiny", entry["kind"])
	assert.NotContains(t, entry["error"], "app:pw")

	request, ok := entry["request"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "G*** H***", request["name"])
}

func TestPIIHandler_ErrorString(t *testing.T) {
	t.Parallel()

	l, buf := logger.NewTestLogger(t)
	l.Error("lookup failed", slog.String("error", "password=hunter2 rejected"))

	logger.AssertLogField(t, buf, "error", "[REDACTED_CREDENTIAL] rejected")
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Same(t, slog.Default(), logger.FromContext(ctx))

	fallback, _ := logger.NewTestLogger(t)
	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))

	scoped, _ := logger.NewTestLogger(t)
	ctx = logger.WithLogger(ctx, scoped)
	assert.Same(t, scoped, logger.FromContext(ctx))
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
}
