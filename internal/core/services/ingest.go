package services

import (
	"context"
	"time"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
	"github.com/custodia-labs/profscout/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService orchestrates the ingestion pipeline: resolve, harvest,
// synthesize, index, record.
type IngestService struct {
	resolver  *Resolver
	harvester *Harvester
	stores    *StoreManager
	runs      driven.HarvestRunStore
}

// NewIngestService creates an ingest service. The run store is optional;
// nil disables local harvest history.
func NewIngestService(
	resolver *Resolver,
	harvester *Harvester,
	stores *StoreManager,
	runs driven.HarvestRunStore,
) *IngestService {
	return &IngestService{
		resolver:  resolver,
		harvester: harvester,
		stores:    stores,
		runs:      runs,
	}
}

// Resolve turns a free-text reference into a canonical organization.
func (s *IngestService) Resolve(ctx context.Context, reference string) (domain.Organization, error) {
	return s.resolver.Resolve(ctx, reference)
}

// Harvest runs the full pipeline for one institution. Resolution and
// harvest failures abort the call. An upload failure does not: the
// harvested records are still a useful result, so the call returns a
// degraded success with Indexed=false.
func (s *IngestService) Harvest(
	ctx context.Context, req driving.HarvestRequest,
) (*driving.HarvestResult, error) {
	org, err := s.resolver.Resolve(ctx, req.OrganizationQuery)
	if err != nil {
		return nil, err
	}

	records, pages, err := s.harvester.Harvest(ctx, org, req.PageSize)
	if err != nil {
		return nil, err
	}

	document := SynthesizeProfiles(records)

	result := &driving.HarvestResult{
		Organization: org,
		Researchers:  records,
		PagesFetched: pages,
		Document:     document,
		StoreName:    s.stores.StoreName(org.Key),
	}

	if len(records) > 0 {
		if err := s.stores.UploadProfiles(ctx, org.Key, document); err != nil {
			// Fail-open: indexing is a secondary side effect.
			logger.Warn("Ingest: indexing failed for %s: %v", org.Key, err)
		} else {
			result.Indexed = true
		}
	}

	s.recordRun(ctx, result)
	return result, nil
}

// recordRun persists the harvest to local history when a run store is
// configured. History failures never fail the harvest.
func (s *IngestService) recordRun(ctx context.Context, result *driving.HarvestResult) {
	if s.runs == nil {
		return
	}

	run := domain.HarvestRun{
		OrganizationID:  result.Organization.ID,
		OrganizationKey: result.Organization.Key,
		RecordCount:     len(result.Researchers),
		PagesFetched:    result.PagesFetched,
		Indexed:         result.Indexed,
		Document:        result.Document,
		CreatedAt:       time.Now().UTC(),
	}
	id, err := s.runs.SaveRun(ctx, run)
	if err != nil {
		logger.Warn("Ingest: recording run failed: %v", err)
		return
	}
	result.RunID = id
}
