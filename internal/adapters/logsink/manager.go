// Package logsink creates the per-scheme build log files.
package logsink

import (
	"os"

	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Manager implements ports.LogSinkManager on the local filesystem.
type Manager struct{}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Prepare creates dir and any missing parents.
func (m *Manager) Prepare(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLogDirCreateFailed.Error()), "dir", dir)
	}
	return nil
}

// Open creates the output and error logs for scheme, truncating earlier runs.
// On failure no file handle is left open.
func (m *Manager) Open(dir, scheme string) (*domain.LogPair, error) {
	if err := m.Prepare(dir); err != nil {
		return nil, err
	}

	pair := &domain.LogPair{
		Scheme:  scheme,
		Dir:     dir,
		OutPath: domain.OutLogPath(dir, scheme),
		ErrPath: domain.ErrLogPath(dir, scheme),
	}

	out, err := create(pair.OutPath)
	if err != nil {
		return nil, zerr.With(err, "scheme", scheme)
	}
	pair.Out = out

	errFile, err := create(pair.ErrPath)
	if err != nil {
		_ = out.Close()
		return nil, zerr.With(err, "scheme", scheme)
	}
	pair.Err = errFile

	return pair, nil
}

func create(path string) (*os.File, error) {
	//nolint:gosec // path is derived from the configured log directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", path)
	}
	return f, nil
}
