package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// Display truncation limits for synthesized profiles.
const (
	maxProfileTopics = 5
	maxProfileYears  = 5
)

// SynthesizeProfile renders one researcher record into its markdown profile
// document. The template is deterministic: same record, same output.
func SynthesizeProfile(r domain.Researcher) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.DisplayName)
	fmt.Fprintf(&b, "- OpenAlex ID: %s\n", r.ID)
	fmt.Fprintf(&b, "- ORCID: %s\n", orNA(r.ORCID))
	fmt.Fprintf(&b, "- Last known institution: %s\n", orNA(r.LastAffiliationName))
	fmt.Fprintf(&b, "- Works count: %d\n", r.WorksCount)
	fmt.Fprintf(&b, "- Cited by count: %d\n", r.CitedByCount)
	if r.Stats.HIndex != nil {
		fmt.Fprintf(&b, "- h-index: %d\n", *r.Stats.HIndex)
	}
	if r.Stats.TwoYearCitedness != nil {
		fmt.Fprintf(&b, "- 2-year mean citedness: %g\n", *r.Stats.TwoYearCitedness)
	}
	if r.WorksAPIURL != "" {
		fmt.Fprintf(&b, "- Works API URL: %s\n", r.WorksAPIURL)
	}
	b.WriteString("\n")

	if len(r.Topics) > 0 {
		b.WriteString("## Main topics\n\n")
		for _, t := range topN(r.Topics, maxProfileTopics) {
			b.WriteString(topicLine(t))
		}
		b.WriteString("\n")
	}

	if len(r.CountsByYear) > 0 {
		b.WriteString("## Recent activity (by year)\n\n")
		for _, y := range recentYears(r.CountsByYear, maxProfileYears) {
			fmt.Fprintf(&b, "- %d: works=%d, cited_by=%d\n", y.Year, y.WorksCount, y.CitedByCount)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Notes\n\n")
	b.WriteString("This file was generated from OpenAlex author data. " +
		"You can extend it with a manual summary, key papers, or collaboration notes.\n")

	return b.String()
}

// SynthesizeProfiles renders each record and joins the documents with the
// fixed profile separator.
func SynthesizeProfiles(records []domain.Researcher) string {
	docs := make([]string, len(records))
	for i, r := range records {
		docs[i] = SynthesizeProfile(r)
	}
	return domain.JoinProfiles(docs)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// topicLine renders one topic bullet with field/domain context when present.
func topicLine(t domain.Topic) string {
	var ctx []string
	if t.Field != "" {
		ctx = append(ctx, t.Field)
	}
	if t.Domain != "" {
		ctx = append(ctx, t.Domain)
	}
	if len(ctx) == 0 {
		return fmt.Sprintf("- %s\n", t.DisplayName)
	}
	return fmt.Sprintf("- %s (%s)\n", t.DisplayName, strings.Join(ctx, " / "))
}

func topN(topics []domain.Topic, n int) []domain.Topic {
	if len(topics) > n {
		return topics[:n]
	}
	return topics
}

// recentYears returns up to n entries sorted by year descending. The input
// slice is not mutated.
func recentYears(counts []domain.YearCounts, n int) []domain.YearCounts {
	sorted := make([]domain.YearCounts, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Year > sorted[j].Year
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
