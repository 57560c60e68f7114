package xcodebuild_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xcbatch/internal/adapters/logsink"
	"go.trai.ch/xcbatch/internal/core/domain"
)

// writeTool writes an executable shell script standing in for an external tool.
func writeTool(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))
	return path
}

// openLogs opens a fresh log pair for scheme in a temporary directory.
func openLogs(t *testing.T, scheme string) *domain.LogPair {
	t.Helper()
	pair, err := logsink.NewManager().Open(filepath.Join(t.TempDir(), "buildlogs"), scheme)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pair.Close() })
	return pair
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
