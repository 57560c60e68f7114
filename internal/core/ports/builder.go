package ports

import (
	"context"

	"go.trai.ch/xcbatch/internal/core/domain"
)

// Builder runs one scheme's build to completion and captures its output.
//
// A build that the tool reports as failed is a normal outcome and is returned with a nil error.
// A non-nil error means the build could not be run or its output could not be captured.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	Build(ctx context.Context, req domain.BuildRequest) (domain.Outcome, error)
}

// Builders maps each build mode to its strategy.
type Builders map[domain.BuildMode]Builder
