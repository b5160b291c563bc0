package platform

import (
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// procVersionPath is where Linux exposes the kernel build banner.
const procVersionPath = "/proc/version"

// Platform identifies the host operating system
// It is computed once per invocation and passed explicitly to consumers
type Platform struct {
	OS  string // runtime.GOOS value, e.g. "windows", "darwin", "linux"
	WSL bool   // Linux kernel running under Windows Subsystem for Linux
}

// Detect classifies the current host
func Detect() Platform {
	return DetectFor(runtime.GOOS, afero.NewOsFs())
}

// DetectFor classifies a host from its GOOS value, reading kernel
// information from fs (useful for tests)
func DetectFor(goos string, fs afero.Fs) Platform {
	p := Platform{OS: goos}
	if p.IsLinux() {
		p.WSL = isWSL(fs)
	}
	return p
}

// IsWindows reports whether the host is native Windows. WSL is not Windows:
// it runs Linux binaries and uses the Linux interpreter names.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// IsLinux reports whether the host is Linux, including WSL
func (p Platform) IsLinux() bool {
	return p.OS == "linux"
}

// String returns a short human-readable name
func (p Platform) String() string {
	if p.WSL {
		return p.OS + " (wsl)"
	}
	return p.OS
}

func isWSL(fs afero.Fs) bool {
	data, err := afero.ReadFile(fs, procVersionPath)
	if err != nil {
		return false
	}
	banner := strings.ToLower(string(data))
	return strings.Contains(banner, "microsoft") || strings.Contains(banner, "wsl")
}
