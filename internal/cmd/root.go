package cmd

import (
	"fmt"

	"github.com/quantmind-br/hookrun/internal/config"
	"github.com/quantmind-br/hookrun/internal/helpers"
	"github.com/quantmind-br/hookrun/internal/interpreter"
	"github.com/quantmind-br/hookrun/internal/launcher"
	"github.com/quantmind-br/hookrun/internal/logging"
	"github.com/quantmind-br/hookrun/internal/platform"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ExitCodeError carries a non-zero exit code out of the command tree
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// deps are the host-facing collaborators, swapped out in tests
type deps struct {
	runner   helpers.CommandRunner
	platform platform.Platform
	streams  launcher.Streams
}

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	return newRootCmd(cfg, log, version, deps{
		runner:   helpers.NewOSCommandRunner(),
		platform: platform.Detect(),
		streams:  launcher.StdStreams(),
	})
}

func newRootCmd(cfg *config.Config, log *zerolog.Logger, version string, d deps) *cobra.Command {
	var (
		which    bool
		probe    bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "hookrun [flags] <script.py> [args...]",
		Short: "Run a Python hook script with the platform's Python 3 interpreter",
		Long: `Run a Python script with a Python 3 interpreter chosen for this platform.

Standard input, output and error are passed straight through to the script
and hookrun exits with the script's exit code. Everything from the script
path on is forwarded verbatim.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger := *log
			if cmd.Flags().Changed("log-level") {
				logger = logger.Level(logging.ParseLevel(logLevel))
			}

			resolver := interpreter.NewResolver(d.platform, d.runner, resolverOptions(cfg), &logger)

			switch {
			case probe:
				return printProbeReport(ctx, cmd.OutOrStdout(), d, resolver)
			case which:
				fmt.Fprintln(cmd.OutOrStdout(), resolver.Resolve(ctx))
				return nil
			}

			l := launcher.New(d.runner, d.streams, &logger)
			if code := l.Run(ctx, resolver.Resolve, args); code != 0 {
				return &ExitCodeError{Code: code}
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("hookrun version {{.Version}}\n")

	// flags end at the script path; the rest belongs to the script
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&which, "which", false, "Print the resolved interpreter and exit")
	cmd.Flags().BoolVar(&probe, "probe", false, "Probe every interpreter candidate and print a report")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level (trace, debug, info, warn, error, off)")

	return cmd
}

// resolverOptions maps the interpreter configuration onto resolver options
func resolverOptions(cfg *config.Config) interpreter.Options {
	if cfg == nil {
		return interpreter.Options{}
	}
	return interpreter.Options{
		Candidates:   cfg.Interpreter.Candidates,
		Canonical:    cfg.Interpreter.Canonical,
		Fallback:     cfg.Interpreter.Fallback,
		Banner:       cfg.Interpreter.Banner,
		ProbeTimeout: cfg.Interpreter.ProbeTimeout,
		MinVersion:   cfg.Interpreter.MinVersion,
	}
}
