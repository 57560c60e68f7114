package ports

import "go.trai.ch/xcbatch/internal/core/domain"

// Reporter presents run progress to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnSchemeStart is called before a scheme's logs are opened.
	OnSchemeStart(scheme string)

	// OnSchemeComplete is called once the scheme's build has exited and its logs are closed.
	OnSchemeComplete(outcome domain.Outcome)

	// OnSchemeAbort is called instead of OnSchemeComplete when a scheme stops the run with an error.
	OnSchemeAbort(scheme string)

	// OnRunComplete is called after every selected scheme has been built.
	OnRunComplete(summary domain.RunSummary)
}
