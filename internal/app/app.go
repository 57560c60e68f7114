// Package app implements the application layer for xcbatch.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/xcbatch/internal/adapters/detector"
	"go.trai.ch/xcbatch/internal/adapters/linear"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/xcbatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// App runs every selected scheme of a workspace, one after the other.
type App struct {
	configLoader ports.ConfigLoader
	lister       ports.SchemeLister
	sinks        ports.LogSinkManager
	builders     ports.Builders
	logger       ports.Logger
	newReporter  func(detector.OutputMode) ports.Reporter
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lister ports.SchemeLister,
	sinks ports.LogSinkManager,
	builders ports.Builders,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		lister:       lister,
		sinks:        sinks,
		builders:     builders,
		logger:       log,
		newReporter:  linear.ForMode,
	}
}

// WithReporter makes every run report to r instead of a stdout reporter.
func (a *App) WithReporter(r ports.Reporter) *App {
	a.newReporter = func(detector.OutputMode) ports.Reporter { return r }
	return a
}

// jsonSwitcher is implemented by loggers that can emit JSON records.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// UseJSONLogs switches the logger to JSON output when it supports it.
func (a *App) UseJSONLogs(enable bool) {
	if s, ok := a.logger.(jsonSwitcher); ok {
		s.SetJSON(enable)
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Workspace is handed verbatim to every build tool invocation.
	Workspace string
	// Patterns are scheme name prefixes. Nil selects every scheme.
	Patterns []string
	// ConfigPath locates the optional config file.
	ConfigPath string
	// Mode and LogDir override the config file when set.
	Mode   string
	LogDir string
	// OutputMode is the --output flag value.
	OutputMode string
	// StartedAt is the moment the process started; the summary reports time elapsed since.
	StartedAt time.Time
}

// Run lists the workspace's schemes, filters them and builds each in order.
//
// Per-scheme build failures are reported and do not stop the run. Any other error aborts the
// run immediately and no summary is printed.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.Workspace == "" {
		return domain.ErrMissingWorkspace
	}

	cfg, err := a.resolveConfig(opts.ConfigPath, opts.Mode, opts.LogDir)
	if err != nil {
		return err
	}

	builder, ok := a.builders[cfg.Mode]
	if !ok {
		return zerr.With(domain.ErrUnsupportedBuildMode, "mode", cfg.Mode.String())
	}

	listing, err := a.lister.List(ctx, opts.Workspace, cfg.Toolchain)
	if err != nil {
		return err
	}
	if listing.Skipped > 0 {
		a.logger.Warn(fmt.Sprintf("skipped %d scheme listing line(s) that are not valid UTF-8", listing.Skipped))
	}

	schemes := domain.FilterSchemes(listing.Schemes, opts.Patterns)

	if err := a.sinks.Prepare(cfg.LogDir); err != nil {
		return err
	}

	reporter := a.newReporter(detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode))

	var summary domain.RunSummary
	for _, scheme := range schemes {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "run interrupted")
		}

		outcome, err := a.buildScheme(ctx, reporter, builder, cfg, opts.Workspace, scheme)
		if err != nil {
			return err
		}
		summary.Record(outcome)
	}
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "run interrupted")
	}

	summary.Elapsed = time.Since(opts.StartedAt)
	reporter.OnRunComplete(summary)
	return nil
}

// buildScheme runs one scheme with its own log pair, which is closed before returning.
func (a *App) buildScheme(
	ctx context.Context,
	reporter ports.Reporter,
	builder ports.Builder,
	cfg *domain.Config,
	workspace, scheme string,
) (domain.Outcome, error) {
	reporter.OnSchemeStart(scheme)

	logs, err := a.sinks.Open(cfg.LogDir, scheme)
	if err != nil {
		reporter.OnSchemeAbort(scheme)
		return domain.Outcome{}, err
	}

	outcome, buildErr := builder.Build(ctx, domain.BuildRequest{
		Workspace: workspace,
		Scheme:    scheme,
		Logs:      logs,
		Toolchain: cfg.Toolchain,
	})
	closeErr := logs.Close()

	if buildErr != nil {
		reporter.OnSchemeAbort(scheme)
		return domain.Outcome{}, buildErr
	}
	if closeErr != nil {
		reporter.OnSchemeAbort(scheme)
		return domain.Outcome{}, zerr.With(zerr.Wrap(closeErr, domain.ErrLogCloseFailed.Error()), "scheme", scheme)
	}

	reporter.OnSchemeComplete(outcome)
	return outcome, nil
}

// resolveConfig loads the config file and applies command line overrides.
func (a *App) resolveConfig(path, mode, logDir string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if mode != "" {
		m, err := domain.ParseBuildMode(mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = m
	}
	if logDir != "" {
		cfg.LogDir = logDir
	}
	return cfg, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	LogDir     string
}

// Clean removes the log directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.resolveConfig(opts.ConfigPath, "", opts.LogDir)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s...", cfg.LogDir))
	if err := os.RemoveAll(cfg.LogDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "dir", cfg.LogDir)
	}
	a.logger.Info(fmt.Sprintf("removed %s", cfg.LogDir))
	return nil
}
