package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingWorkspace is returned when no workspace reference is given on the command line.
	ErrMissingWorkspace = zerr.New("missing workspace argument")

	// ErrInvalidBuildMode is returned when a build mode is neither 'simple' nor 'chained'.
	ErrInvalidBuildMode = zerr.New("invalid build mode, expected 'simple' or 'chained'")

	// ErrListSpawnFailed is returned when the scheme listing command cannot be started.
	ErrListSpawnFailed = zerr.New("failed to spawn scheme listing process")

	// ErrListReadFailed is returned when the scheme listing output cannot be read.
	ErrListReadFailed = zerr.New("failed to read scheme listing")

	// ErrLogDirCreateFailed is returned when the log directory cannot be created.
	ErrLogDirCreateFailed = zerr.New("failed to create log directory")

	// ErrLogFileOpenFailed is returned when a per-scheme log file cannot be created.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrLogWriteFailed is returned when captured build output cannot be written to its log.
	ErrLogWriteFailed = zerr.New("failed to write build log")

	// ErrLogCloseFailed is returned when a log file cannot be flushed and closed.
	ErrLogCloseFailed = zerr.New("failed to close build log")

	// ErrBuildSpawnFailed is returned when the build process cannot be started.
	ErrBuildSpawnFailed = zerr.New("failed to spawn build process")

	// ErrFormatterSpawnFailed is returned when the log formatting process cannot be started.
	ErrFormatterSpawnFailed = zerr.New("failed to spawn formatter process")

	// ErrMissingFormatter is returned in chained mode when no formatter command is configured.
	ErrMissingFormatter = zerr.New("chained mode requires a formatter command")

	// ErrBuildWaitFailed is returned when waiting on the build process fails for a reason
	// other than the process exiting with a non-zero status.
	ErrBuildWaitFailed = zerr.New("failed to wait for build process")

	// ErrBuildInterrupted is returned when a build is cancelled before its process exits on its own.
	ErrBuildInterrupted = zerr.New("build interrupted")

	// ErrPipeCreateFailed is returned when the pipe between build and formatter cannot be created.
	ErrPipeCreateFailed = zerr.New("failed to create build output pipe")

	// ErrUnsupportedBuildMode is returned when no builder is registered for a build mode.
	ErrUnsupportedBuildMode = zerr.New("no builder registered for build mode")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config file version")

	// ErrCleanFailed is returned when the log directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove log directory")
)
