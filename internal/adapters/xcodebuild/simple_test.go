package xcodebuild_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcbatch/internal/adapters/shell"
	"go.trai.ch/xcbatch/internal/adapters/xcodebuild"
	"go.trai.ch/xcbatch/internal/core/domain"
)

func simpleRequest(t *testing.T, tool, scheme string) domain.BuildRequest {
	t.Helper()
	return domain.BuildRequest{
		Workspace: "App.xcworkspace",
		Scheme:    scheme,
		Logs:      openLogs(t, scheme),
		Toolchain: domain.Toolchain{
			BuildTool:     tool,
			SuccessMarker: domain.DefaultSuccessMarker,
		},
	}
}

func TestSimpleBuilder_Build(t *testing.T) {
	tests := []struct {
		name          string
		script        string
		wantSucceeded bool
		wantExitCode  int
		wantOut       string
		wantErr       string
	}{
		{
			name:          "marker and zero exit",
			script:        "echo Compiling\necho '** BUILD SUCCEEDED **'\n",
			wantSucceeded: true,
			wantOut:       "Compiling\n** BUILD SUCCEEDED **\n",
		},
		{
			name:          "marker wins over non-zero exit",
			script:        "echo '** BUILD SUCCEEDED **'\nexit 65\n",
			wantSucceeded: true,
			wantExitCode:  65,
			wantOut:       "** BUILD SUCCEEDED **\n",
		},
		{
			name:          "zero exit without marker fails",
			script:        "echo done\n",
			wantSucceeded: false,
			wantOut:       "done\n",
		},
		{
			name:          "failure marker",
			script:        "echo '** BUILD FAILED **' >&2\necho '** BUILD FAILED **'\nexit 65\n",
			wantSucceeded: false,
			wantExitCode:  65,
			wantOut:       "** BUILD FAILED **\n",
			wantErr:       "** BUILD FAILED **\n",
		},
		{
			name:          "stderr goes to error log only",
			script:        "echo out\necho err >&2\necho '** BUILD SUCCEEDED **'\n",
			wantSucceeded: true,
			wantOut:       "out\n** BUILD SUCCEEDED **\n",
			wantErr:       "err\n",
		},
		{
			name:          "crlf normalized and missing final newline added",
			script:        "printf 'one\\r\\ntwo'\n",
			wantSucceeded: false,
			wantOut:       "one\ntwo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := writeTool(t, "xcodebuild", tt.script)
			req := simpleRequest(t, tool, "App")

			outcome, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(context.Background(), req)
			require.NoError(t, err)
			require.NoError(t, req.Logs.Close())

			assert.Equal(t, "App", outcome.Scheme)
			assert.Equal(t, tt.wantSucceeded, outcome.Succeeded)
			assert.Equal(t, tt.wantExitCode, outcome.ExitCode)
			assert.Equal(t, tt.wantOut, readFile(t, req.Logs.OutPath))
			assert.Equal(t, tt.wantErr, readFile(t, req.Logs.ErrPath))
		})
	}
}

func TestSimpleBuilder_Build_Args(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	tool := writeTool(t, "xcodebuild", `echo "$@" > "`+argsFile+`"`+"\n")
	req := simpleRequest(t, tool, "AppTests")

	_, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "-workspace App.xcworkspace -scheme AppTests\n", readFile(t, argsFile))
}

// A build that floods both streams must not block on a full pipe.
func TestSimpleBuilder_Build_LargeOutput(t *testing.T) {
	tool := writeTool(t, "xcodebuild", `i=0
while [ $i -lt 20000 ]; do
  echo "stdout line $i"
  echo "stderr line $i" >&2
  i=$((i+1))
done
echo '** BUILD SUCCEEDED **'
`)
	req := simpleRequest(t, tool, "Big")

	outcome, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, req.Logs.Close())
	assert.True(t, outcome.Succeeded)

	out := strings.Split(strings.TrimSuffix(readFile(t, req.Logs.OutPath), "\n"), "\n")
	require.Len(t, out, 20001)
	assert.Equal(t, "stdout line 0", out[0])
	assert.Equal(t, "stdout line 19999", out[19999])
	assert.Equal(t, "** BUILD SUCCEEDED **", out[20000])

	errLines := strings.Split(strings.TrimSuffix(readFile(t, req.Logs.ErrPath), "\n"), "\n")
	assert.Len(t, errLines, 20000)
}

func TestSimpleBuilder_Build_LongLine(t *testing.T) {
	tool := writeTool(t, "xcodebuild", `head -c 3000000 /dev/zero | tr '\0' 'x'
echo
echo '** BUILD SUCCEEDED **'
`)
	req := simpleRequest(t, tool, "Long")

	outcome, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, req.Logs.Close())
	assert.True(t, outcome.Succeeded)
	assert.Len(t, readFile(t, req.Logs.OutPath), 3000000+1+len("** BUILD SUCCEEDED **\n"))
}

func TestSimpleBuilder_Build_SpawnFailure(t *testing.T) {
	req := simpleRequest(t, filepath.Join(t.TempDir(), "missing-xcodebuild"), "App")

	_, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildSpawnFailed.Error())
}

func TestSimpleBuilder_Build_ClosedLog(t *testing.T) {
	tool := writeTool(t, "xcodebuild", "echo '** BUILD SUCCEEDED **'\n")
	req := simpleRequest(t, tool, "App")
	require.NoError(t, req.Logs.Out.Close())

	_, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLogWriteFailed.Error())
}

func TestSimpleBuilder_Build_CancelStopsHelperProcesses(t *testing.T) {
	// The sleep is a child of the script and holds stdout open while it runs.
	tool := writeTool(t, "xcodebuild", "echo start\nsleep 30\necho '** BUILD SUCCEEDED **'\n")
	req := simpleRequest(t, tool, "App")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(200*time.Millisecond, cancel)

	start := time.Now()
	outcome, err := xcodebuild.NewSimpleBuilder(shell.NewLauncher()).Build(ctx, req)

	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), domain.ErrBuildInterrupted.Error())
	assert.Less(t, time.Since(start), shell.WaitDelay)
	assert.False(t, outcome.Succeeded)

	require.NoError(t, req.Logs.Close())
	assert.Equal(t, "start\n", readFile(t, req.Logs.OutPath))
}
