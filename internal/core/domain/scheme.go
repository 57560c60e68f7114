package domain

import (
	"errors"
	"os"
	"time"
)

// LogPair holds the open log files for one scheme's build.
type LogPair struct {
	Scheme  string
	Dir     string
	Out     *os.File
	Err     *os.File
	OutPath string
	ErrPath string
}

// CompileCommandsPath returns the compile command database the formatter writes for this scheme.
func (p *LogPair) CompileCommandsPath() string {
	return CompileCommandsPath(p.Dir, p.Scheme)
}

// Close syncs and closes both log files.
func (p *LogPair) Close() error {
	var errs error
	for _, f := range []*os.File{p.Out, p.Err} {
		if f == nil {
			continue
		}
		if err := f.Sync(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = errors.Join(errs, err)
		}
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// Toolchain describes the external tools used to list and build schemes.
type Toolchain struct {
	// BuildTool is the executable that lists and builds schemes.
	BuildTool string
	// Formatter is the argv of the formatter used in chained mode.
	// It may contain the {scheme} and {logDir} placeholders.
	Formatter []string
	// SuccessMarker is the line prefix that marks a successful build in simple mode.
	SuccessMarker string
	// Environment overrides variables inherited from the current process.
	Environment map[string]string
}

// BuildRequest is everything a builder needs to build one scheme.
type BuildRequest struct {
	Workspace string
	Scheme    string
	Logs      *LogPair
	Toolchain Toolchain
}

// Outcome is the result of building one scheme.
type Outcome struct {
	Scheme    string
	Succeeded bool
	ExitCode  int
	Duration  time.Duration
}

// RunSummary aggregates the outcomes of a run.
type RunSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// Record adds an outcome to the summary.
func (s *RunSummary) Record(o Outcome) {
	s.Total++
	if o.Succeeded {
		s.Succeeded++
	} else {
		s.Failed++
	}
}
