package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/hookrun/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewRootCmd(cfg, &logger, "1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "hookrun", cmd.Name())
	assert.Equal(t, "1.0.0", cmd.Version)
	assert.Empty(t, cmd.Commands(), "a subcommand name could shadow a script path")
}

func TestResolverOptions(t *testing.T) {
	assert.Empty(t, resolverOptions(nil).Candidates)

	cfg, err := config.LoadFrom()
	require.NoError(t, err)

	opts := resolverOptions(cfg)
	assert.Equal(t, cfg.Interpreter.Candidates, opts.Candidates)
	assert.Equal(t, cfg.Interpreter.Canonical, opts.Canonical)
	assert.Equal(t, cfg.Interpreter.ProbeTimeout, opts.ProbeTimeout)
}

func TestExitCodeError(t *testing.T) {
	err := &ExitCodeError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())
}
