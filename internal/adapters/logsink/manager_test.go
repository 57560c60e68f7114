package logsink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcbatch/internal/adapters/logsink"
	"go.trai.ch/xcbatch/internal/core/domain"
)

func TestManager_Prepare_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "buildlogs")
	m := logsink.NewManager()

	require.NoError(t, m.Prepare(dir))
	require.NoError(t, m.Prepare(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestManager_Prepare_FileInTheWay(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "buildlogs")
	require.NoError(t, os.WriteFile(dir, []byte("not a dir"), 0o600))

	err := logsink.NewManager().Prepare(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLogDirCreateFailed.Error())
}

func TestManager_Open_CreatesPair(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "buildlogs")
	m := logsink.NewManager()

	pair, err := m.Open(dir, "App")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pair.Close() })

	assert.Equal(t, filepath.Join(dir, "App.log"), pair.OutPath)
	assert.Equal(t, filepath.Join(dir, "App.err.log"), pair.ErrPath)
	assert.Equal(t, filepath.Join(dir, "App_compile_commands.json"), pair.CompileCommandsPath())
	assert.FileExists(t, pair.OutPath)
	assert.FileExists(t, pair.ErrPath)
}

func TestManager_Open_Truncates(t *testing.T) {
	dir := t.TempDir()
	m := logsink.NewManager()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "App.log"), []byte("old output from a long previous run\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App.err.log"), []byte("old errors\n"), 0o600))

	pair, err := m.Open(dir, "App")
	require.NoError(t, err)

	_, err = pair.Out.WriteString("new\n")
	require.NoError(t, err)
	require.NoError(t, pair.Close())

	out, err := os.ReadFile(filepath.Join(dir, "App.log"))
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(out))

	errOut, err := os.ReadFile(filepath.Join(dir, "App.err.log"))
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestManager_Open_InvalidSchemeName(t *testing.T) {
	dir := t.TempDir()

	_, err := logsink.NewManager().Open(dir, "Missing/Nested")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLogFileOpenFailed.Error())
}

func TestLogPair_Close_Twice(t *testing.T) {
	pair, err := logsink.NewManager().Open(t.TempDir(), "App")
	require.NoError(t, err)

	require.NoError(t, pair.Close())
	assert.NoError(t, pair.Close())
}
