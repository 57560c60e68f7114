package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcbatch/internal/adapters/config"
	"go.trai.ch/xcbatch/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_DefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(domain.ConfigFileName, []byte("mode: chained\n"), domain.FilePerm))

	cfg, err := config.NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeChained, cfg.Mode)
}

func TestLoader_Load_FullFile(t *testing.T) {
	path := writeConfig(t, `
version: "1"
mode: chained
logDir: out/logs
tool: /usr/bin/xcodebuild
successMarker: "** ARCHIVE SUCCEEDED **"
formatter: ["xcbeautify", "--quiet"]
environment:
  NSUnbufferedIO: "YES"
`)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeChained, cfg.Mode)
	assert.Equal(t, "out/logs", cfg.LogDir)
	assert.Equal(t, "/usr/bin/xcodebuild", cfg.Toolchain.BuildTool)
	assert.Equal(t, "** ARCHIVE SUCCEEDED **", cfg.Toolchain.SuccessMarker)
	assert.Equal(t, []string{"xcbeautify", "--quiet"}, cfg.Toolchain.Formatter)
	assert.Equal(t, map[string]string{"NSUnbufferedIO": "YES"}, cfg.Toolchain.Environment)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "logDir: logs\n")

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.LogDir = "logs"
	assert.Equal(t, want, cfg)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	cfg, err := config.NewLoader().Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid mode", content: "mode: parallel\n", wantErr: domain.ErrInvalidBuildMode},
		{name: "unknown field", content: "schemes: [App]\n", wantErr: domain.ErrConfigParseFailed},
		{name: "malformed yaml", content: "mode: [simple\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unsupported version", content: "version: \"2\"\n", wantErr: domain.ErrUnsupportedConfigVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoader().Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_Unreadable(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build.env"),
		[]byte("DEVELOPER_DIR=/Applications/Xcode.app\nNSUnbufferedIO=NO\n"), domain.FilePerm))

	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
envFile: build.env
environment:
  NSUnbufferedIO: "YES"
`), domain.FilePerm))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"DEVELOPER_DIR":  "/Applications/Xcode.app",
		"NSUnbufferedIO": "YES",
	}, cfg.Toolchain.Environment)
}

func TestLoader_Load_MissingEnvFile(t *testing.T) {
	_, err := config.NewLoader().Load(writeConfig(t, "envFile: absent.env\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}
