//go:build !windows

package helpers

import "os/exec"

func hideProbeWindow(_ *exec.Cmd) {}

func hideChildWindow(_ *exec.Cmd) {}
