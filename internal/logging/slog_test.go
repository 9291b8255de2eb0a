package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufferLogger(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)

	logger.Debug("topic added", "topic", "a/b")
	logger.Info("bridge resumed", "topics", 2)
	logger.Warn("subscription not found", "topic", "a/c")
	logger.Error("upstream subscribe failed", "error", "timeout")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "topic=a/b")
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "topics=2")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "topic=a/c")
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "error=timeout")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	assert.Empty(t, buf.String())

	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNewSlogWriter(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewSlogWriter(buf, "debug", false)
		logger.Debug("nodes pruned", "count", 3)

		require.Contains(t, buf.String(), "count=3")
	})

	t.Run("json output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewSlogWriter(buf, "info", true)
		logger.Debug("hidden")
		logger.Info("visible", "topic", "x/y")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), `"topic":"x/y"`)
	})
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}
