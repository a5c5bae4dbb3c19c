//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedHubstatsPath holds the path to a shared hubstats binary built once for all tests.
	sharedHubstatsPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getHubstatsBinary returns the path to the hubstats binary, building it once if needed.
func getHubstatsBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "hubstats-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		hubstatsPath := filepath.Join(tempDir, "hubstats")
		buildCmd := exec.Command("go", "build", "-o", hubstatsPath, "./cmd/hubstats")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build hubstats: %v", err))
		}

		sharedHubstatsPath = hubstatsPath
	})

	return sharedHubstatsPath
}

// runHubstatsCommand runs the shared binary with the given env overrides.
// Env entries are appended on top of the current process environment.
func runHubstatsCommand(t *testing.T, env []string, args ...string) error {
	hubstatsPath := getHubstatsBinary()
	cmd := exec.Command(hubstatsPath, args...)
	cmd.Dir = ".." // Run from project root
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
