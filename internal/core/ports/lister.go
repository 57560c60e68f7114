package ports

import (
	"context"

	"go.trai.ch/xcbatch/internal/core/domain"
)

// SchemeLister enumerates the schemes of a workspace.
//
//go:generate mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type SchemeLister interface {
	// List runs the listing command for workspace and returns the schemes it reports,
	// in listing order and without deduplication.
	List(ctx context.Context, workspace string, tools domain.Toolchain) (domain.ListingResult, error)
}
