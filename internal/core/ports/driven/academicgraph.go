package driven

import (
	"context"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// InitialCursor is the sentinel cursor that starts a researcher listing.
const InitialCursor = "*"

// ResearcherFilter narrows a researcher listing to qualifying records.
type ResearcherFilter struct {
	// OrganizationID requires an exact last-known-affiliation match
	// against this canonical institution identifier.
	OrganizationID string

	// RequireORCID requires a non-empty ORCID.
	RequireORCID bool

	// MinWorksCount requires works_count strictly greater than this value.
	MinWorksCount int

	// MinTwoYearCitedness requires 2yr mean citedness strictly greater
	// than this value.
	MinTwoYearCitedness float64
}

// ResearcherPage is one page of a cursor-paginated researcher listing.
type ResearcherPage struct {
	// Records are the researchers on this page, in API return order.
	Records []domain.Researcher

	// NextCursor is the opaque token for the following page, empty when
	// this is the last page.
	NextCursor string
}

// AcademicGraph is the scholarly graph API the harvester reads from.
// Listings are exposed one page at a time so the caller owns the loop and
// can stop early without forcing further fetches.
type AcademicGraph interface {
	// SearchOrganizations searches institutions by free text and returns
	// up to limit lightweight summaries.
	SearchOrganizations(ctx context.Context, query string, limit int) ([]domain.OrganizationSummary, error)

	// SearchResearchers searches authors by free text and returns up to
	// limit lightweight summaries.
	SearchResearchers(ctx context.Context, query string, limit int) ([]domain.ResearcherSummary, error)

	// ListResearchers fetches one page of researchers matching the filter.
	// cursor must be InitialCursor for the first page, then the NextCursor
	// of the preceding page. pageSize is clamped by the adapter to the
	// API's accepted range.
	ListResearchers(ctx context.Context, filter ResearcherFilter, pageSize int, cursor string) (*ResearcherPage, error)
}
