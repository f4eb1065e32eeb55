package openalex

import (
	"sort"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// listResponse is the envelope OpenAlex wraps every listing in.
type listResponse[T any] struct {
	Meta    meta `json:"meta"`
	Results []T  `json:"results"`
}

// meta carries pagination metadata. NextCursor is empty on the last page.
type meta struct {
	Count      int    `json:"count"`
	NextCursor string `json:"next_cursor"`
}

// institution is the OpenAlex institution wire shape (subset).
type institution struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CountryCode string `json:"country_code"`
	Type        string `json:"type"`
	HomepageURL string `json:"homepage_url"`
	ROR         string `json:"ror"`
}

func (i institution) toDomain() domain.OrganizationSummary {
	return domain.OrganizationSummary{
		ID:          i.ID,
		DisplayName: i.DisplayName,
		CountryCode: i.CountryCode,
		Type:        i.Type,
		HomepageURL: i.HomepageURL,
		ROR:         i.ROR,
	}
}

// author is the OpenAlex author wire shape (subset).
type author struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	ORCID        string `json:"orcid"`
	WorksCount   int    `json:"works_count"`
	CitedByCount int    `json:"cited_by_count"`

	SummaryStats *summaryStats `json:"summary_stats"`
	CountsByYear []yearCounts  `json:"counts_by_year"`

	// Topics is preferred; XConcepts is the legacy fallback some records
	// still carry instead.
	Topics    []topic    `json:"topics"`
	XConcepts []xConcept `json:"x_concepts"`

	// LastKnownInstitutions is the current list form; LastKnownInstitution
	// is the deprecated single form older records use.
	LastKnownInstitutions []affiliation `json:"last_known_institutions"`
	LastKnownInstitution  *affiliation  `json:"last_known_institution"`

	WorksAPIURL string `json:"works_api_url"`
}

type summaryStats struct {
	HIndex           *int     `json:"h_index"`
	TwoYearCitedness *float64 `json:"2yr_mean_citedness"`
}

type yearCounts struct {
	Year         int `json:"year"`
	WorksCount   int `json:"works_count"`
	CitedByCount int `json:"cited_by_count"`
}

type topic struct {
	DisplayName string       `json:"display_name"`
	Field       *displayName `json:"field"`
	Domain      *displayName `json:"domain"`
}

type xConcept struct {
	DisplayName string `json:"display_name"`
}

type displayName struct {
	DisplayName string `json:"display_name"`
}

type affiliation struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// toDomain converts an author record. Year counts are sorted descending
// here so domain consumers always see the contract order.
func (a author) toDomain() domain.Researcher {
	r := domain.Researcher{
		ID:           a.ID,
		DisplayName:  a.DisplayName,
		ORCID:        a.ORCID,
		WorksCount:   a.WorksCount,
		CitedByCount: a.CitedByCount,
		WorksAPIURL:  a.WorksAPIURL,
	}

	if a.SummaryStats != nil {
		r.Stats = domain.SummaryStats{
			HIndex:           a.SummaryStats.HIndex,
			TwoYearCitedness: a.SummaryStats.TwoYearCitedness,
		}
	}

	for _, t := range a.Topics {
		dt := domain.Topic{DisplayName: t.DisplayName}
		if t.Field != nil {
			dt.Field = t.Field.DisplayName
		}
		if t.Domain != nil {
			dt.Domain = t.Domain.DisplayName
		}
		r.Topics = append(r.Topics, dt)
	}
	if len(r.Topics) == 0 {
		for _, c := range a.XConcepts {
			r.Topics = append(r.Topics, domain.Topic{DisplayName: c.DisplayName})
		}
	}

	for _, y := range a.CountsByYear {
		r.CountsByYear = append(r.CountsByYear, domain.YearCounts(y))
	}
	sort.Slice(r.CountsByYear, func(i, j int) bool {
		return r.CountsByYear[i].Year > r.CountsByYear[j].Year
	})

	for _, inst := range a.LastKnownInstitutions {
		r.Affiliations = append(r.Affiliations, domain.Affiliation(inst))
	}
	if len(r.Affiliations) == 0 && a.LastKnownInstitution != nil {
		r.Affiliations = append(r.Affiliations, domain.Affiliation(*a.LastKnownInstitution))
	}

	return r
}

func (a author) toSummary() domain.ResearcherSummary {
	s := domain.ResearcherSummary{
		ID:           a.ID,
		DisplayName:  a.DisplayName,
		ORCID:        a.ORCID,
		WorksCount:   a.WorksCount,
		CitedByCount: a.CitedByCount,
	}
	if len(a.LastKnownInstitutions) > 0 {
		s.LastKnownInstitution = a.LastKnownInstitutions[0].DisplayName
	} else if a.LastKnownInstitution != nil {
		s.LastKnownInstitution = a.LastKnownInstitution.DisplayName
	}
	return s
}
