package domain

import "path/filepath"

const (
	// DefaultLogDir is the directory, relative to the working directory, that receives build logs.
	DefaultLogDir = "buildlogs"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "xcbatch.yaml"

	// OutLogSuffix is appended to a scheme name to form its output log file name.
	OutLogSuffix = ".log"

	// ErrLogSuffix is appended to a scheme name to form its error log file name.
	ErrLogSuffix = ".err.log"

	// CompileCommandsSuffix is appended to a scheme name to form the compile command database name.
	CompileCommandsSuffix = "_compile_commands.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// OutLogPath returns the output log path for a scheme inside dir.
func OutLogPath(dir, scheme string) string {
	return filepath.Join(dir, scheme+OutLogSuffix)
}

// ErrLogPath returns the error log path for a scheme inside dir.
func ErrLogPath(dir, scheme string) string {
	return filepath.Join(dir, scheme+ErrLogSuffix)
}

// CompileCommandsPath returns the compile command database path for a scheme inside dir.
func CompileCommandsPath(dir, scheme string) string {
	return filepath.Join(dir, scheme+CompileCommandsSuffix)
}
