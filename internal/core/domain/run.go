package domain

import "time"

// HarvestRun records one completed harvest for local history. The combined
// profile document is kept so the run can be inspected offline; the raw
// researcher records themselves are not persisted.
type HarvestRun struct {
	// ID is a generated unique run identifier.
	ID string

	// OrganizationID is the canonical identifier that was harvested.
	OrganizationID string

	// OrganizationKey is the derived scoping key.
	OrganizationKey string

	// RecordCount is the number of researcher records harvested.
	RecordCount int

	// PagesFetched is the number of pages the harvest loop consumed.
	PagesFetched int

	// Indexed reports whether the upload to the scoped store succeeded.
	// False marks a degraded success: records were harvested but the
	// indexing side effect failed.
	Indexed bool

	// Document is the combined synthesized profile document.
	Document string

	// CreatedAt is when the run finished.
	CreatedAt time.Time
}
