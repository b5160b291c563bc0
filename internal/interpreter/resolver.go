// Package interpreter selects the Python interpreter executable for the host.
//
// On Windows several executable names are in common use and a bare "python"
// may be a Python 2 install or the Microsoft Store stub, so each candidate is
// probed with --version and validated against its banner. Elsewhere the
// canonical name is returned without probing.
package interpreter

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/quantmind-br/hookrun/internal/helpers"
	"github.com/quantmind-br/hookrun/internal/platform"
	"github.com/rs/zerolog"
)

// Defaults used when Options leaves a field empty
const (
	DefaultCanonical    = "python3"
	DefaultFallback     = "python"
	DefaultBanner       = "Python 3"
	DefaultProbeTimeout = 5 * time.Second
)

// versionArg is the argument every candidate is probed with
const versionArg = "--version"

// DefaultCandidates returns the Windows candidate list in preference order
func DefaultCandidates() []string {
	return []string{"python", "py", "python3"}
}

// Options controls candidate selection
type Options struct {
	Candidates   []string      // Windows candidates, first match wins
	Canonical    string        // name used on every other platform
	Fallback     string        // name used when no Windows candidate validates
	Banner       string        // substring the version output must contain
	ProbeTimeout time.Duration // bound on each probe
	MinVersion   string        // optional minimum version, e.g. "3.9"
}

// Resolver picks an interpreter executable name
type Resolver struct {
	platform   platform.Platform
	runner     helpers.CommandRunner
	opts       Options
	minVersion *semver.Version
	log        *zerolog.Logger
}

// NewResolver creates a Resolver for the given platform.
// Empty option fields fall back to the package defaults; an unparsable
// MinVersion is logged and ignored.
func NewResolver(p platform.Platform, runner helpers.CommandRunner, opts Options, log *zerolog.Logger) *Resolver {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if len(opts.Candidates) == 0 {
		opts.Candidates = DefaultCandidates()
	}
	if opts.Canonical == "" {
		opts.Canonical = DefaultCanonical
	}
	if opts.Fallback == "" {
		opts.Fallback = DefaultFallback
	}
	if opts.Banner == "" {
		opts.Banner = DefaultBanner
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = DefaultProbeTimeout
	}

	r := &Resolver{
		platform: p,
		runner:   runner,
		opts:     opts,
		log:      log,
	}

	if opts.MinVersion != "" {
		v, err := semver.NewVersion(opts.MinVersion)
		if err != nil {
			log.Warn().Err(err).Str("min_version", opts.MinVersion).Msg("ignoring invalid minimum interpreter version")
		} else {
			r.minVersion = v
		}
	}

	return r
}

// Candidates returns the names considered on this platform, in order
func (r *Resolver) Candidates() []string {
	if !r.platform.IsWindows() {
		return []string{r.opts.Canonical}
	}
	return append([]string(nil), r.opts.Candidates...)
}

// Resolve returns the interpreter to launch. It never fails: when no
// candidate validates the fallback name is returned and the launch attempt
// reports whatever error the OS produces for it.
func (r *Resolver) Resolve(ctx context.Context) string {
	if !r.platform.IsWindows() {
		r.log.Debug().
			Str("platform", r.platform.String()).
			Str("interpreter", r.opts.Canonical).
			Msg("using canonical interpreter")
		return r.opts.Canonical
	}

	for _, candidate := range r.opts.Candidates {
		result := r.Probe(ctx, candidate)
		if result.Accepted() {
			r.log.Debug().
				Str("interpreter", candidate).
				Str("version", versionString(result.Version)).
				Msg("resolved interpreter")
			return candidate
		}
	}

	r.log.Debug().
		Strs("candidates", r.opts.Candidates).
		Str("fallback", r.opts.Fallback).
		Msg("no candidate validated, using fallback")
	return r.opts.Fallback
}

// ProbeAll probes every candidate of the current platform without stopping
// at the first match
func (r *Resolver) ProbeAll(ctx context.Context) []ProbeResult {
	candidates := r.Candidates()
	results := make([]ProbeResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, r.Probe(ctx, candidate))
	}
	return results
}

// Probe runs candidate with --version under the probe timeout and classifies
// the result. Errors are recorded in the result, never returned.
func (r *Resolver) Probe(ctx context.Context, candidate string) ProbeResult {
	probeCtx, cancel := context.WithTimeout(ctx, r.opts.ProbeTimeout)
	defer cancel()

	stdout, _, err := r.runner.RunCommandWithOutput(probeCtx, candidate, versionArg)
	result := ProbeResult{
		Candidate: candidate,
		ExitCode:  r.runner.GetExitCode(err),
		Stdout:    stdout,
		Err:       err,
	}

	switch {
	case err != nil && errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		result.Outcome = ProbeTimeout
	case err != nil && !helpers.IsExitError(err):
		result.Outcome = ProbeSpawnError
	case err != nil:
		result.Outcome = ProbeExitFailure
	case !strings.Contains(stdout, r.opts.Banner):
		result.Outcome = ProbeBannerMismatch
	default:
		result.Outcome = r.checkVersion(&result)
	}

	r.log.Debug().
		Str("candidate", candidate).
		Stringer("outcome", result.Outcome).
		Int("exit_code", result.ExitCode).
		Err(err).
		Msg("probed interpreter candidate")

	return result
}

// checkVersion records the banner version and applies the minimum version gate
func (r *Resolver) checkVersion(result *ProbeResult) ProbeOutcome {
	v, err := extractVersion(result.Stdout)
	if err == nil {
		result.Version = v
	}
	if r.minVersion == nil {
		return ProbeAccepted
	}
	if v == nil || v.LessThan(r.minVersion) {
		return ProbeVersionTooOld
	}
	return ProbeAccepted
}

func versionString(v *semver.Version) string {
	if v == nil {
		return ""
	}
	return v.String()
}
