//go:build unix

package interpreter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quantmind-br/hookrun/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCandidate creates an executable shell script standing in for an interpreter
func writeCandidate(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestProbe_TimeoutBoundsLingeringGrandchild(t *testing.T) {
	hung := writeCandidate(t, "python", "sleep 4 & sleep 4")
	r := NewResolver(windowsHost, helpers.NewOSCommandRunner(), Options{ProbeTimeout: 300 * time.Millisecond}, nil)

	start := time.Now()
	result := r.Probe(context.Background(), hung)
	elapsed := time.Since(start)

	assert.Equal(t, ProbeTimeout, result.Outcome, "outcome = %s", result.Outcome)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestResolve_RealCandidates(t *testing.T) {
	hung := writeCandidate(t, "python", "sleep 4 & sleep 4")
	py2 := writeCandidate(t, "py", `echo "Python 2.7.18" >&2`)
	py3 := writeCandidate(t, "python3", `echo "Python 3.12.1"`)

	r := NewResolver(windowsHost, helpers.NewOSCommandRunner(), Options{
		Candidates:   []string{hung, py2, py3},
		ProbeTimeout: 300 * time.Millisecond,
	}, nil)

	start := time.Now()
	got := r.Resolve(context.Background())

	assert.Equal(t, py3, got)
	assert.Less(t, time.Since(start), 3*time.Second)
}
