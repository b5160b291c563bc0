//go:build unix

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalExitBase follows the shell convention of 128 + signal number.
const signalExitBase = 128

// exitStatus maps a finished child to the code the launcher exits with.
// Children killed by a signal report 128+N instead of the -1 os/exec gives.
func exitStatus(exitErr *exec.ExitError) (code int, signal string) {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		sig := status.Signal()
		return signalExitBase + int(sig), unix.SignalName(sig)
	}
	return exitErr.ExitCode(), ""
}
