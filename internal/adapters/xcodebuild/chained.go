package xcodebuild

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/xcbatch/internal/adapters/shell"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/xcbatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// ChainedBuilder pipes the build tool's stdout into a formatter process whose stdout becomes the
// output log. Both processes write their stderr to the error log.
//
// The outcome follows domain.PolicyExitStatus: only the build process's exit status counts.
// The formatter is waited on so it is never left behind, but its status is only logged.
type ChainedBuilder struct {
	launcher *shell.Launcher
	logger   ports.Logger
}

// NewChainedBuilder creates a ChainedBuilder.
func NewChainedBuilder(launcher *shell.Launcher, logger ports.Logger) *ChainedBuilder {
	return &ChainedBuilder{launcher: launcher, logger: logger}
}

// Build runs the build for req.Scheme through the configured formatter.
func (b *ChainedBuilder) Build(ctx context.Context, req domain.BuildRequest) (domain.Outcome, error) {
	start := time.Now()
	outcome := domain.Outcome{Scheme: req.Scheme}

	if len(req.Toolchain.Formatter) == 0 {
		return outcome, domain.ErrMissingFormatter
	}
	argv := domain.ExpandFormatter(req.Toolchain.Formatter, req.Scheme, req.Logs.Dir)

	pr, pw, err := os.Pipe()
	if err != nil {
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrPipeCreateFailed.Error()), "scheme", req.Scheme)
	}

	formatter := b.launcher.Command(ctx, argv[0], argv[1:], req.Toolchain.Environment)
	formatter.Stdin = pr
	formatter.Stdout = req.Logs.Out
	formatter.Stderr = req.Logs.Err

	if err := formatter.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrFormatterSpawnFailed.Error()), "formatter", argv[0])
	}
	// The formatter holds its own copy of the read end.
	_ = pr.Close()

	build := b.launcher.Command(ctx, req.Toolchain.BuildTool, BuildArgs(req.Workspace, req.Scheme), req.Toolchain.Environment)
	build.Stdout = pw
	build.Stderr = req.Logs.Err

	if err := build.Start(); err != nil {
		// Closing the write end lets the formatter see EOF and exit.
		_ = pw.Close()
		_ = formatter.Wait()
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrBuildSpawnFailed.Error()), "scheme", req.Scheme)
	}
	// Only the build process may hold the write end, or the formatter never sees EOF.
	_ = pw.Close()

	buildErr := build.Wait()
	formatErr := formatter.Wait()
	outcome.Duration = time.Since(start)

	if err := ctx.Err(); err != nil {
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrBuildInterrupted.Error()), "scheme", req.Scheme)
	}
	if formatErr != nil {
		b.logger.Warn(fmt.Sprintf("formatter for %s exited abnormally: %v", req.Scheme, formatErr))
	}

	code, exited := shell.ExitCode(buildErr)
	if !exited {
		return outcome, zerr.With(zerr.Wrap(buildErr, domain.ErrBuildWaitFailed.Error()), "scheme", req.Scheme)
	}

	outcome.ExitCode = code
	outcome.Succeeded = domain.ExitStatusSucceeded(code)
	return outcome, nil
}
