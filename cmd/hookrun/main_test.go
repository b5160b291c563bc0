package main

import (
	"context"
	"testing"

	"github.com/quantmind-br/hookrun/internal/config"
	"github.com/quantmind-br/hookrun/internal/logging"
	"github.com/quantmind-br/hookrun/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgs(t *testing.T) {
	t.Setenv("HOOKRUN_LOGGING_LEVEL", "off")
	assert.Equal(t, 1, run(context.Background(), []string{}))
}

func TestRun_Which(t *testing.T) {
	t.Setenv("HOOKRUN_LOGGING_LEVEL", "off")
	assert.Equal(t, 0, run(context.Background(), []string{"--which"}))
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Setenv("HOOKRUN_LOGGING_LEVEL", "off")
	assert.Equal(t, 1, run(context.Background(), []string{"--no-such-flag"}))
}

func TestRun_MissingInterpreter(t *testing.T) {
	t.Setenv("HOOKRUN_LOGGING_LEVEL", "off")
	t.Setenv("HOOKRUN_INTERPRETER_CANONICAL", "nonexistent-interpreter-12345")
	t.Setenv("HOOKRUN_INTERPRETER_FALLBACK", "nonexistent-interpreter-12345")
	t.Setenv("HOOKRUN_INTERPRETER_CANDIDATES", "nonexistent-interpreter-12345")

	assert.Equal(t, 1, run(context.Background(), []string{"hook.py"}))
}

func TestLoggerInitialization(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		NoColor: cfg.Logging.Color == ui.ColorNever,
	})
	assert.NotNil(t, log, "Logger should not be nil")
}
