// Package shell prepares external tool invocations.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// WaitDelay bounds how long Wait keeps waiting for a cancelled command's output pipes to close.
const WaitDelay = 5 * time.Second

// Launcher builds commands that inherit the current environment with per-run overrides.
type Launcher struct {
	environ func() []string
}

// NewLauncher creates a Launcher that inherits os.Environ.
func NewLauncher() *Launcher {
	return &Launcher{environ: os.Environ}
}

// Command returns an unstarted command for name and args.
//
// The command inherits the process environment with overrides applied on top. A bare name is
// resolved against the PATH of that environment, so an override of PATH changes which tool is
// found. The command runs in its own process group; cancelling ctx kills the whole group.
func (l *Launcher) Command(ctx context.Context, name string, args []string, overrides map[string]string) *exec.Cmd {
	env := resolveEnvironment(l.environ(), overrides)

	cmd := exec.CommandContext(ctx, resolveExecutable(name, env), args...) //nolint:gosec // configured tool
	cmd.Args[0] = name
	cmd.Env = env
	cmd.WaitDelay = WaitDelay
	isolate(cmd)

	return cmd
}

// ExitCode extracts the exit code from an error returned by exec.Cmd.Wait.
// ok is false when err did not come from the process exiting.
func ExitCode(err error) (code int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return -1, false
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// resolveExecutable returns the path a bare tool name resolves to under env's PATH.
// Names containing a separator, and names not found, are returned unchanged so that
// Start reports the failure.
func resolveExecutable(name string, env []string) string {
	if strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	for _, dir := range searchPath(env) {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate
		}
	}
	return name
}

// searchPath splits env's PATH into directories. An empty element stands for the working
// directory.
func searchPath(env []string) []string {
	var path string
	for _, entry := range env {
		if v, ok := strings.CutPrefix(entry, "PATH="); ok {
			path = v
		}
	}
	if path == "" {
		return nil
	}

	dirs := filepath.SplitList(path)
	for i, d := range dirs {
		if d == "" {
			dirs[i] = "."
		}
	}
	return dirs
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
