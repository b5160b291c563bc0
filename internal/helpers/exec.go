package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ProbeWaitDelay bounds how long RunCommandWithOutput waits for output pipes
// after its context is done. A killed command can leave grandchildren (py.exe
// starting python.exe) holding the pipes open.
const ProbeWaitDelay = time.Second

// CommandRunner defines an interface for executing system commands
// This allows for mocking in tests and dependency injection
type CommandRunner interface {
	// LookPath resolves a command name to an executable path
	LookPath(name string) (string, error)

	// RunCommandWithOutput runs a short-lived command and returns both stdout and stderr
	RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int

	// PrepareCommand prepares a command but does not execute it
	PrepareCommand(ctx context.Context, name string, args ...string) *exec.Cmd
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct{}

// NewOSCommandRunner creates a new OSCommandRunner instance
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// LookPath resolves a command name to an executable path
func (r *OSCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// RunCommandWithOutput runs a command and returns both stdout and stderr.
// The command runs without a console window on Windows. Once ctx is done the
// call returns within ProbeWaitDelay even if descendants still hold the pipes.
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = ProbeWaitDelay
	hideProbeWindow(cmd)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		err = fmt.Errorf("command %q failed: %w", name, err)
	}

	return stdout, stderr, err
}

// GetExitCode extracts the exit code from a command error.
// Returns -1 when err does not carry an exit status (spawn failure, or a
// process terminated by a signal).
func (r *OSCommandRunner) GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// PrepareCommand prepares a command but does not execute it
// Callers configure Stdin/Stdout/Stderr before calling Start()
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) PrepareCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	hideChildWindow(cmd)
	return cmd
}

// IsExitError reports whether err carries a process exit status, i.e. the
// command started and then terminated unsuccessfully
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
