package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color modes accepted by InitColors
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Color scheme for hookrun's own messages. The launched script's output is
// never touched.
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)

	Bold  = color.New(color.Bold)
	Muted = color.New(color.Faint)
)

// InitColors initializes color settings from the configured mode and the environment
func InitColors(mode string) {
	switch mode {
	case ColorAlways:
		EnableColors()
		return
	case ColorNever:
		DisableColors()
		return
	}

	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		DisableColors()
	}

	// Respect TERM environment variable
	if os.Getenv("TERM") == "dumb" {
		DisableColors()
	}
}

// FprintLine formats a message, colors it and writes it to w followed by a newline
func FprintLine(w io.Writer, c *color.Color, format string, args ...interface{}) {
	c.Fprintln(w, fmt.Sprintf(format, args...))
}

// PrintKeyValue prints a key-value pair with a bold key
func PrintKeyValue(w io.Writer, key, value string) {
	Bold.Fprintf(w, "%s: ", key)
	fmt.Fprintln(w, value)
}

// ColorizeOutcome colors a probe outcome label, green when accepted
func ColorizeOutcome(label string, accepted bool) string {
	if accepted {
		return Success.Sprint(label)
	}
	return Warning.Sprint(label)
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output
func EnableColors() {
	color.NoColor = false
}
