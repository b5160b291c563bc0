//go:build windows

package helpers

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// hideProbeWindow keeps diagnostic probes from flashing a console window.
func hideProbeWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

// hideChildWindow hides any new window of the launched child. The child keeps
// the parent's console so inherited standard handles keep working.
func hideChildWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
