// Package e2e drives the tubeview binary in a pseudo-terminal.
package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildTubeview builds cmd/tubeview into a temp dir and returns its path.
func buildTubeview(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e: skipped in -short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("e2e: go toolchain not on PATH")
	}

	binPath := filepath.Join(t.TempDir(), "tubeview")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// test/e2e is two levels below the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/tubeview")
	cmd.Dir = filepath.Join(wd, "..", "..")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	return binPath
}

// fixtureEnv points tubeview at a scratch data dir with a fixed seed and
// no simulated latency.
func fixtureEnv(dataDir string) []string {
	return append(os.Environ(),
		"HOME="+dataDir,
		"TUBEVIEW_HOME="+dataDir,
		"TUBEVIEW_SEED=1",
		"TUBEVIEW_DELAY_MS=0",
	)
}
