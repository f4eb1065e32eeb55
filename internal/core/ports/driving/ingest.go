package driving

import (
	"context"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// HarvestRequest configures one ingestion run.
type HarvestRequest struct {
	// OrganizationQuery is a free-text name, canonical identifier, or
	// OpenAlex URL identifying the institution.
	OrganizationQuery string

	// PageSize is the page size used while paginating (1-200, default 200).
	PageSize int
}

// HarvestResult is the outcome of one ingestion run.
type HarvestResult struct {
	// Organization is the resolved institution.
	Organization domain.Organization

	// Researchers are the harvested records in API return order.
	Researchers []domain.Researcher

	// PagesFetched is the number of pages consumed.
	PagesFetched int

	// Document is the combined synthesized profile document.
	Document string

	// StoreName is the scoped store the document was uploaded to.
	StoreName string

	// Indexed reports whether the upload succeeded. False is a degraded
	// success: the harvested records are still returned.
	Indexed bool

	// RunID identifies the recorded harvest run, empty when run history
	// is disabled.
	RunID string
}

// IngestService runs the ingestion pipeline: resolve an institution, harvest
// its researchers, synthesize profiles, and index them into the scoped store.
type IngestService interface {
	// Resolve turns a free-text reference into a canonical organization.
	Resolve(ctx context.Context, reference string) (domain.Organization, error)

	// Harvest runs the full pipeline for one institution.
	Harvest(ctx context.Context, req HarvestRequest) (*HarvestResult, error)
}
