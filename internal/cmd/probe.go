package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/hookrun/internal/interpreter"
	"github.com/quantmind-br/hookrun/internal/ui"
)

// printProbeReport prints the platform, every candidate's probe outcome and
// the interpreter a launch would use
func printProbeReport(ctx context.Context, w io.Writer, d deps, resolver *interpreter.Resolver) error {
	ui.PrintKeyValue(w, "Platform", d.platform.String())
	if !d.platform.IsWindows() {
		ui.Muted.Fprintln(w, "Canonical interpreter is used without probing on this platform")
	}
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Candidate", "Path", "Outcome", "Version", "Exit Code"}),
		tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	for _, result := range resolver.ProbeAll(ctx) {
		path, err := d.runner.LookPath(result.Candidate)
		if err != nil {
			path = "-"
		}

		version := "-"
		if result.Version != nil {
			version = result.Version.String()
		}

		exitCode := "-"
		if result.ExitCode >= 0 {
			exitCode = strconv.Itoa(result.ExitCode)
		}

		table.Append(
			result.Candidate,
			path,
			ui.ColorizeOutcome(result.Outcome.String(), result.Accepted()),
			version,
			exitCode,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render probe report: %w", err)
	}

	fmt.Fprintln(w)
	ui.PrintKeyValue(w, "Resolved", resolver.Resolve(ctx))
	return nil
}
