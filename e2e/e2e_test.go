//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var xcbatchBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "xcbatch-e2e-*")
	if err != nil {
		panic(err)
	}

	xcbatchBinary = filepath.Join(tmpDir, "xcbatch")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", xcbatchBinary, "./cmd/xcbatch")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build xcbatch binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts the binary and the script's own bin directory, which holds the fake build
// tools, on PATH.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	path := filepath.Dir(xcbatchBinary) +
		string(os.PathListSeparator) + filepath.Join(env.WorkDir, "bin") +
		string(os.PathListSeparator) + env.Getenv("PATH")
	env.Setenv("PATH", path)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
