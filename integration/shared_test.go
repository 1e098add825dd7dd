//go:build basic || database

package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

var (
	// sharedBinaryPath holds the path to a shared brandscope binary built once for all tests.
	sharedBinaryPath string

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

// getBrandscopeBinary returns the path to the brandscope binary, building it once if needed.
func getBrandscopeBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "brandscope-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "brandscope")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build brandscope: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// writeScorecard writes a minimal JSON scorecard export for import tests.
func writeScorecard(t *testing.T, dir string) string {
	t.Helper()

	scorecard := map[string]any{
		"records": []map[string]any{
			{
				"scope":          "overall",
				"totalTests":     10,
				"totalResponses": 40,
				"lastCalculated": time.Now().UTC().Format(time.RFC3339Nano),
				"brandMetrics": []map[string]any{
					{"brandName": "Acme", "isOwner": true, "visibilityScore": 80, "shareOfVoice": 45, "avgPosition": 1.5},
					{"brandName": "Globex", "visibilityScore": 60, "shareOfVoice": 30, "avgPosition": 2.5},
				},
			},
			{
				"scope":          "topic",
				"scopeValue":     "pricing",
				"totalTests":     4,
				"totalResponses": 16,
				"lastCalculated": time.Now().UTC().Format(time.RFC3339Nano),
				"brandMetrics": []map[string]any{
					{"brandName": "Acme", "isOwner": true, "visibilityScore": 70},
				},
			},
		},
		"selection": []string{"Globex"},
	}

	data, err := json.MarshalIndent(scorecard, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal scorecard: %v", err)
	}

	path := filepath.Join(dir, "scorecard.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write scorecard: %v", err)
	}
	return path
}

func runBrandscopeCommand(t *testing.T, args ...string) error {
	_, err := runBrandscopeCommandOutput(t, args...)
	return err
}

// runBrandscopeCommandOutput runs the CLI and returns its combined output
// for assertions on what the command printed.
func runBrandscopeCommandOutput(t *testing.T, args ...string) (string, error) {
	binaryPath := getBrandscopeBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return string(output), err
	}
	return string(output), nil
}
