package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates logger with console writer", func(t *testing.T) {
		logger := NewLogger(Config{
			Level:   "info",
			NoColor: true,
		})
		assert.NotNil(t, logger)
	})

	t.Run("creates logger with file writer", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "nested", "hookrun.log")

		var console bytes.Buffer
		logger := NewLogger(Config{
			Level:   "info",
			LogFile: logFile,
			NoColor: true,
			Console: &console,
		})
		require.NotNil(t, logger)

		logger.Info().Str("interpreter", "python3").Msg("launching script")

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "launching script")
		assert.Contains(t, string(data), `"interpreter":"python3"`)
		assert.Contains(t, console.String(), "launching script")
	})

	t.Run("default level hides debug output", func(t *testing.T) {
		var console bytes.Buffer
		logger := NewLogger(Config{NoColor: true, Console: &console})

		logger.Debug().Msg("probe detail")
		logger.Info().Msg("info detail")
		logger.Warn().Msg("warn detail")

		out := console.String()
		assert.NotContains(t, out, "probe detail")
		assert.NotContains(t, out, "info detail")
		assert.Contains(t, out, "warn detail")
	})

	t.Run("quiet launch does not touch the log directory", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "hookrun")
		logger := NewLogger(Config{
			LogFile: filepath.Join(logDir, "hookrun.log"),
			NoColor: true,
			Console: &bytes.Buffer{},
		})

		logger.Debug().Msg("probe detail")
		logger.Info().Msg("launching script")

		_, err := os.Stat(logDir)
		assert.True(t, os.IsNotExist(err), "log directory must not be created before a write")
	})

	t.Run("disabled level never writes the log file", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "hookrun")
		logger := NewLogger(Config{
			Level:   "off",
			LogFile: filepath.Join(logDir, "hookrun.log"),
			NoColor: true,
			Console: &bytes.Buffer{},
		})

		logger.Error().Msg("dropped")

		_, err := os.Stat(logDir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("unwritable log directory falls back to console only", func(t *testing.T) {
		tmpDir := t.TempDir()
		blocker := filepath.Join(tmpDir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		var console bytes.Buffer
		logger := NewLogger(Config{
			Level:   "warn",
			LogFile: filepath.Join(blocker, "hookrun.log"),
			NoColor: true,
			Console: &console,
		})

		logger.Warn().Msg("still logged")
		assert.Contains(t, console.String(), "still logged")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"invalid", zerolog.WarnLevel}, // defaults to warn
		{"", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Str("test", "value").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "value") {
		t.Errorf("expected log output to contain 'value' field, got: %s", output)
	}
}
