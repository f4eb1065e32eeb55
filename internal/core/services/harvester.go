package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/logger"
)

// Harvest loop bounds.
const (
	// DefaultPageSize is used when no page size is requested.
	DefaultPageSize = 200

	// MaxPageSize is the largest page size the graph API accepts.
	MaxPageSize = 200

	// MaxPages caps the number of pages fetched per harvest regardless of
	// remaining data. A deliberate cost ceiling, not a completeness bug.
	MaxPages = 5

	// MinWorksCount and MinTwoYearCitedness qualify a researcher for
	// harvesting, combined with an ORCID requirement and an exact
	// affiliation match.
	MinWorksCount       = 0
	MinTwoYearCitedness = 5
)

// harvestStage names the harvest pipeline stage in progress events.
const harvestStage = "harvest"

// Harvester cursor-paginates the academic graph to collect all qualifying
// researcher records for one organization.
type Harvester struct {
	graph    driven.AcademicGraph
	progress driven.ProgressSink
}

// NewHarvester creates a new harvester. The progress sink is optional; nil
// drops all events.
func NewHarvester(graph driven.AcademicGraph, progress driven.ProgressSink) *Harvester {
	return &Harvester{graph: graph, progress: progress}
}

// Harvest fetches all qualifying researchers for the organization, bounded
// by MaxPages. Records are returned in API order. Any upstream failure
// aborts the whole harvest; pages already fetched are discarded.
func (h *Harvester) Harvest(
	ctx context.Context, org domain.Organization, pageSize int,
) ([]domain.Researcher, int, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filter := driven.ResearcherFilter{
		OrganizationID:      org.ID,
		RequireORCID:        true,
		MinWorksCount:       MinWorksCount,
		MinTwoYearCitedness: MinTwoYearCitedness,
	}

	logger.Section("Harvest")
	logger.Debug("Harvest: org=%s pageSize=%d maxPages=%d", org.Key, pageSize, MaxPages)

	var records []domain.Researcher
	cursor := driven.InitialCursor
	pages := 0

	for cursor != "" && pages < MaxPages {
		// The enclosing request may have been abandoned; stop between
		// pages rather than running the loop to completion.
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		page, err := h.graph.ListResearchers(ctx, filter, pageSize, cursor)
		if err != nil {
			return nil, 0, fmt.Errorf("list researchers page %d: %w", pages+1, err)
		}

		for i := range page.Records {
			normalizeAffiliation(&page.Records[i], org)
		}
		records = append(records, page.Records...)
		pages++
		cursor = page.NextCursor

		h.publish(domain.ProgressEvent{
			Stage:  harvestStage,
			Status: pageStatus(cursor),
			Message: fmt.Sprintf("Fetched page %d with %d authors (total so far: %d).",
				pages, len(page.Records), len(records)),
		})
		logger.Debug("Harvest: page %d, %d records, next cursor present=%t",
			pages, len(page.Records), cursor != "")
	}

	logger.Info("Harvest: %d records across %d pages", len(records), pages)
	return records, pages, nil
}

// publish sends an event to the sink, if one is attached. Fire-and-forget.
func (h *Harvester) publish(event domain.ProgressEvent) {
	if h.progress == nil {
		return
	}
	h.progress.Publish(event)
}

// pageStatus marks the final page completed and every other page running.
func pageStatus(nextCursor string) domain.ProgressStatus {
	if nextCursor == "" {
		return domain.StatusCompleted
	}
	return domain.StatusRunning
}

// normalizeAffiliation resolves the researcher's displayed affiliation
// against the harvested organization: an affiliation whose key matches the
// organization key wins, otherwise the first listed affiliation stands.
func normalizeAffiliation(r *domain.Researcher, org domain.Organization) {
	for _, aff := range r.Affiliations {
		if domain.KeyFromID(aff.ID) == org.Key {
			r.LastAffiliationName = aff.DisplayName
			return
		}
	}
	if len(r.Affiliations) > 0 {
		r.LastAffiliationName = r.Affiliations[0].DisplayName
	}
}
