package openalex

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// authorSelectFields is the field projection requested for harvested
// authors. Trimming the payload keeps large pages cheap.
var authorSelectFields = strings.Join([]string{
	"id",
	"display_name",
	"orcid",
	"works_count",
	"cited_by_count",
	"summary_stats",
	"counts_by_year",
	"topics",
	"x_concepts",
	"last_known_institutions",
	"works_api_url",
}, ",")

// buildAuthorFilter renders a ResearcherFilter into the OpenAlex filter
// syntax: comma-joined key:value clauses.
func buildAuthorFilter(f driven.ResearcherFilter) string {
	var clauses []string
	if f.RequireORCID {
		clauses = append(clauses, "has_orcid:true")
	}
	if f.OrganizationID != "" {
		clauses = append(clauses, "last_known_institutions.id:"+f.OrganizationID)
	}
	clauses = append(clauses, fmt.Sprintf("works_count:>%d", f.MinWorksCount))
	if f.MinTwoYearCitedness > 0 {
		clauses = append(clauses,
			fmt.Sprintf("summary_stats.2yr_mean_citedness:>%g", f.MinTwoYearCitedness))
	}
	return strings.Join(clauses, ",")
}
