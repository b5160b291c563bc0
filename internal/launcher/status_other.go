//go:build !unix

package launcher

import "os/exec"

// exitStatus maps a finished child to the code the launcher exits with.
// Without POSIX signals the reported code is used as is.
func exitStatus(exitErr *exec.ExitError) (code int, signal string) {
	code = exitErr.ExitCode()
	if code < 0 {
		return ExitLauncherFailure, ""
	}
	return code, ""
}
