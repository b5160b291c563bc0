package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/hookrun/internal/cmd"
	"github.com/quantmind-br/hookrun/internal/config"
	"github.com/quantmind-br/hookrun/internal/logging"
	"github.com/quantmind-br/hookrun/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	ui.InitColors(cfg.Logging.Color)

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == ui.ColorNever,
	})

	rootCmd := cmd.NewRootCmd(cfg, log, version)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		log.Debug().Err(err).Msg("command failed")
		ui.FprintLine(os.Stderr, ui.Error, "Error: %v", err)
		return 1
	}
	return 0
}
