package xcodebuild

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/xcbatch/internal/adapters/shell"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/xcbatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Lister implements ports.SchemeLister by parsing the build tool's -list output.
type Lister struct {
	launcher *shell.Launcher
	logger   ports.Logger
	stderr   io.Writer
}

// NewLister creates a Lister. The listing command's stderr is passed through to ours.
func NewLister(launcher *shell.Launcher, logger ports.Logger) *Lister {
	return &Lister{
		launcher: launcher,
		logger:   logger,
		stderr:   os.Stderr,
	}
}

// List runs the listing command and extracts the schemes from its stdout.
// The whole stream is consumed and the process reaped before returning.
func (l *Lister) List(ctx context.Context, workspace string, tools domain.Toolchain) (domain.ListingResult, error) {
	cmd := l.launcher.Command(ctx, tools.BuildTool, ListArgs(workspace), tools.Environment)
	cmd.Stderr = l.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return domain.ListingResult{}, zerr.With(zerr.Wrap(err, domain.ErrListSpawnFailed.Error()), "tool", tools.BuildTool)
	}

	if err := cmd.Start(); err != nil {
		return domain.ListingResult{}, zerr.With(zerr.Wrap(err, domain.ErrListSpawnFailed.Error()), "tool", tools.BuildTool)
	}

	res, parseErr := domain.ParseSchemeListing(stdout)
	if parseErr != nil {
		// Keep the tool from blocking on a full pipe before reaping it.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	if err := ctx.Err(); err != nil {
		return domain.ListingResult{}, zerr.Wrap(err, "scheme listing interrupted")
	}
	if parseErr != nil {
		return domain.ListingResult{}, zerr.With(parseErr, "workspace", workspace)
	}

	code, exited := shell.ExitCode(waitErr)
	if !exited {
		return domain.ListingResult{}, zerr.With(zerr.Wrap(waitErr, domain.ErrListReadFailed.Error()), "workspace", workspace)
	}
	if code != 0 {
		l.logger.Warn(fmt.Sprintf("%s -list exited with status %d", tools.BuildTool, code))
	}

	return res, nil
}
