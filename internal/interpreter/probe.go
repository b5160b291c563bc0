package interpreter

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// ProbeOutcome classifies a single candidate probe
type ProbeOutcome int

const (
	// ProbeAccepted means the candidate ran and reported a matching version banner
	ProbeAccepted ProbeOutcome = iota
	// ProbeSpawnError means the candidate could not be started at all
	ProbeSpawnError
	// ProbeTimeout means the candidate did not finish within the probe timeout
	ProbeTimeout
	// ProbeExitFailure means the candidate ran but exited with a non-zero status
	ProbeExitFailure
	// ProbeBannerMismatch means the candidate succeeded but its output lacks the expected banner
	ProbeBannerMismatch
	// ProbeVersionTooOld means the banner matched but the version is below the configured minimum
	ProbeVersionTooOld
)

func (o ProbeOutcome) String() string {
	switch o {
	case ProbeAccepted:
		return "accepted"
	case ProbeSpawnError:
		return "spawn error"
	case ProbeTimeout:
		return "timeout"
	case ProbeExitFailure:
		return "exit failure"
	case ProbeBannerMismatch:
		return "banner mismatch"
	case ProbeVersionTooOld:
		return "version too old"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ProbeResult is the evaluated outcome of running one candidate with --version
type ProbeResult struct {
	Candidate string
	Outcome   ProbeOutcome
	ExitCode  int             // -1 when the process never reported a status
	Stdout    string          // captured standard output, possibly empty
	Version   *semver.Version // parsed from the banner, nil when absent
	Err       error           // spawn or exit error, nil on success
}

// Accepted reports whether the candidate validated
func (r ProbeResult) Accepted() bool {
	return r.Outcome == ProbeAccepted
}

// bannerVersionRegex matches the dotted version in banners like "Python 3.12.1"
var bannerVersionRegex = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// extractVersion finds and parses the first dotted version number in a banner.
// Pre-release suffixes such as "rc1" are dropped.
func extractVersion(banner string) (*semver.Version, error) {
	match := bannerVersionRegex.FindString(banner)
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", banner)
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", match, err)
	}
	return v, nil
}
