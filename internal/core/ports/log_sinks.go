package ports

import "go.trai.ch/xcbatch/internal/core/domain"

// LogSinkManager creates the per-scheme log files.
//
//go:generate mockgen -source=log_sinks.go -destination=mocks/mock_log_sinks.go -package=mocks
type LogSinkManager interface {
	// Prepare makes sure dir exists. It succeeds if the directory is already present.
	Prepare(dir string) error

	// Open creates, truncating, the output and error logs for scheme inside dir.
	Open(dir, scheme string) (*domain.LogPair, error)
}
