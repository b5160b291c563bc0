// Package launcher runs one interpreter child process with inherited
// standard streams and turns its termination into an exit code.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/quantmind-br/hookrun/internal/helpers"
	"github.com/quantmind-br/hookrun/internal/ui"
	"github.com/rs/zerolog"
)

// Exit codes owned by the launcher itself
const (
	ExitUsage           = 1
	ExitLauncherFailure = 1
)

// UsageLine is printed when no script path is given
const UsageLine = "Usage: hookrun <script.py> [args...]"

// ErrNoScript is returned when the invocation carries no script path
var ErrNoScript = errors.New("missing script path")

// Request is the script to run and its verbatim arguments
type Request struct {
	Script string
	Args   []string
}

// ParseRequest splits the caller's arguments into script path and
// forwarded arguments
func ParseRequest(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, ErrNoScript
	}
	return Request{
		Script: args[0],
		Args:   append([]string(nil), args[1:]...),
	}, nil
}

// Argv returns the child's argument vector after the interpreter name
func (r Request) Argv() []string {
	return append([]string{r.Script}, r.Args...)
}

// OutcomeKind distinguishes the two terminal outcomes of a launch
type OutcomeKind int

const (
	// OutcomeExited means the child ran and terminated
	OutcomeExited OutcomeKind = iota
	// OutcomeSpawnError means the child could not be created or waited on
	OutcomeSpawnError
)

func (k OutcomeKind) String() string {
	if k == OutcomeSpawnError {
		return "spawn error"
	}
	return "exited"
}

// Outcome is the single terminal result of Launch
type Outcome struct {
	Kind   OutcomeKind
	Code   int    // exit code to mirror
	Signal string // signal name when the child was killed by a signal
	Err    error  // set for OutcomeSpawnError
}

// Streams are the standard streams handed to the child
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own standard streams. Passing *os.File
// values lets the child inherit the descriptors directly.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Launcher spawns the interpreter child
type Launcher struct {
	runner  helpers.CommandRunner
	streams Streams
	log     *zerolog.Logger
}

// New creates a Launcher
func New(runner helpers.CommandRunner, streams Streams, log *zerolog.Logger) *Launcher {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Launcher{
		runner:  runner,
		streams: streams,
		log:     log,
	}
}

// Run performs a full invocation: validate arguments, resolve the
// interpreter once and launch it once. It returns the code the process
// should exit with.
func (l *Launcher) Run(ctx context.Context, resolve func(context.Context) string, args []string) int {
	req, err := ParseRequest(args)
	if err != nil {
		fmt.Fprintln(l.streams.Err, UsageLine)
		return ExitUsage
	}

	return l.Launch(ctx, resolve(ctx), req).Code
}

// Launch starts interpreter with the request's arguments, waits for it and
// reports exactly one outcome. The child is never retried.
func (l *Launcher) Launch(ctx context.Context, interpreter string, req Request) Outcome {
	cmd := l.runner.PrepareCommand(ctx, interpreter, req.Argv()...)
	cmd.Stdin = l.streams.In
	cmd.Stdout = l.streams.Out
	cmd.Stderr = l.streams.Err

	l.log.Debug().
		Str("interpreter", interpreter).
		Str("script", req.Script).
		Strs("args", req.Args).
		Msg("launching script")

	if err := cmd.Start(); err != nil {
		return l.spawnFailure(interpreter, err)
	}

	err := cmd.Wait()
	if err == nil {
		l.log.Debug().Int("exit_code", 0).Msg("script finished")
		return Outcome{Kind: OutcomeExited}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return l.spawnFailure(interpreter, err)
	}

	code, signal := exitStatus(exitErr)
	l.log.Debug().
		Int("exit_code", code).
		Str("signal", signal).
		Msg("script finished")

	return Outcome{Kind: OutcomeExited, Code: code, Signal: signal}
}

func (l *Launcher) spawnFailure(interpreter string, err error) Outcome {
	l.log.Debug().Err(err).Str("interpreter", interpreter).Msg("failed to run interpreter")
	ui.FprintLine(l.streams.Err, ui.Error, "Failed to run %s: %v", interpreter, err)
	return Outcome{
		Kind: OutcomeSpawnError,
		Code: ExitLauncherFailure,
		Err:  fmt.Errorf("run %s: %w", interpreter, err),
	}
}
