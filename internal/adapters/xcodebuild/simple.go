package xcodebuild

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.trai.ch/xcbatch/internal/adapters/shell"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// SimpleBuilder runs the build tool alone. Stderr goes straight to the error log; stdout is
// read line by line, copied to the output log and scanned for the success marker.
//
// The outcome follows domain.PolicyMarker: the exit status is recorded but not consulted.
type SimpleBuilder struct {
	launcher *shell.Launcher
}

// NewSimpleBuilder creates a SimpleBuilder.
func NewSimpleBuilder(launcher *shell.Launcher) *SimpleBuilder {
	return &SimpleBuilder{launcher: launcher}
}

// Build runs the build for req.Scheme and blocks until the process has exited.
func (b *SimpleBuilder) Build(ctx context.Context, req domain.BuildRequest) (domain.Outcome, error) {
	start := time.Now()
	outcome := domain.Outcome{Scheme: req.Scheme}

	cmd := b.launcher.Command(ctx, req.Toolchain.BuildTool, BuildArgs(req.Workspace, req.Scheme), req.Toolchain.Environment)
	cmd.Stderr = req.Logs.Err

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrBuildSpawnFailed.Error()), "scheme", req.Scheme)
	}

	if err := cmd.Start(); err != nil {
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrBuildSpawnFailed.Error()), "scheme", req.Scheme)
	}

	detector := domain.NewMarkerDetector(req.Toolchain.SuccessMarker)
	log := bufio.NewWriter(req.Logs.Out)

	captureErr := capture(stdout, log, detector)
	if captureErr != nil {
		// Keep draining so the build never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	outcome.Duration = time.Since(start)

	if err := log.Flush(); err != nil && captureErr == nil {
		captureErr = zerr.Wrap(err, domain.ErrLogWriteFailed.Error())
	}
	if err := ctx.Err(); err != nil {
		return outcome, zerr.With(zerr.Wrap(err, domain.ErrBuildInterrupted.Error()), "scheme", req.Scheme)
	}
	if captureErr != nil {
		return outcome, zerr.With(captureErr, "scheme", req.Scheme)
	}

	code, exited := shell.ExitCode(waitErr)
	if !exited {
		return outcome, zerr.With(zerr.Wrap(waitErr, domain.ErrBuildWaitFailed.Error()), "scheme", req.Scheme)
	}

	outcome.ExitCode = code
	outcome.Succeeded = detector.Succeeded()
	return outcome, nil
}

// capture copies r to w one line at a time, normalizing line endings to "\n", and feeds every
// line to the detector. Lines of any length are supported.
func capture(r io.Reader, w io.Writer, detector *domain.MarkerDetector) error {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return zerr.Wrap(err, domain.ErrLogWriteFailed.Error())
			}
			detector.Observe(line)
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return zerr.Wrap(readErr, "failed to read build output")
		}
	}
}
