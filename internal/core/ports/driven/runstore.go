package driven

import (
	"context"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// HarvestRunStore persists local harvest history.
type HarvestRunStore interface {
	// SaveRun records one completed harvest and returns the run ID,
	// generating one when run.ID is empty.
	SaveRun(ctx context.Context, run domain.HarvestRun) (string, error)

	// ListRuns returns recorded runs, newest first. The Document field is
	// omitted from listings.
	ListRuns(ctx context.Context) ([]domain.HarvestRun, error)

	// GetRun returns one run by ID, including its document.
	// Returns domain.ErrNotFound when absent.
	GetRun(ctx context.Context, id string) (*domain.HarvestRun, error)

	// Close releases resources.
	Close() error
}
