package domain

// Researcher is one harvested author record. Instances are created fresh
// per harvest call, never mutated afterwards, and discarded once profile
// synthesis is done.
type Researcher struct {
	// ID is the canonical OpenAlex author identifier.
	ID string

	// DisplayName is the author's display name.
	DisplayName string

	// ORCID is the author's ORCID URL, empty when absent.
	ORCID string

	// WorksCount is the total number of works attributed to the author.
	WorksCount int

	// CitedByCount is the total citation count.
	CitedByCount int

	// Affiliations is the author's last-known affiliation list as
	// returned by the API, in listed order.
	Affiliations []Affiliation

	// LastAffiliationName is the display name of the author's last known
	// affiliation, normalized against the harvested organization. Set by
	// the harvester from Affiliations.
	LastAffiliationName string

	// Stats holds optional summary statistics.
	Stats SummaryStats

	// Topics is the author's topic list in API order. Display consumers
	// truncate to the first five entries.
	Topics []Topic

	// CountsByYear holds per-year activity, sorted by year descending.
	CountsByYear []YearCounts

	// WorksAPIURL is the works-listing endpoint for the author, empty
	// when absent.
	WorksAPIURL string
}

// Affiliation is one entry in an author's last-known affiliation list.
type Affiliation struct {
	// ID is the canonical institution identifier, usually a full URL.
	ID string

	// DisplayName is the institution's display name.
	DisplayName string
}

// SummaryStats holds optional author-level statistics. The pointer fields
// distinguish "absent" from zero.
type SummaryStats struct {
	HIndex           *int
	TwoYearCitedness *float64
}

// Topic is a research topic with its broader field and domain context.
type Topic struct {
	DisplayName string
	Field       string
	Domain      string
}

// YearCounts is per-year publication and citation activity.
type YearCounts struct {
	Year         int
	WorksCount   int
	CitedByCount int
}

// ResearcherSummary is a lightweight author listing entry, used by the
// free-text author search operation.
type ResearcherSummary struct {
	ID                   string
	DisplayName          string
	ORCID                string
	WorksCount           int
	CitedByCount         int
	LastKnownInstitution string
}
