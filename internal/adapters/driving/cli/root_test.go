package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
)

// mockIngestService returns a canned harvest result.
type mockIngestService struct {
	result *driving.HarvestResult
	err    error
}

func (m *mockIngestService) Resolve(_ context.Context, _ string) (domain.Organization, error) {
	if m.result == nil {
		return domain.Organization{}, m.err
	}
	return m.result.Organization, m.err
}

func (m *mockIngestService) Harvest(
	_ context.Context, _ driving.HarvestRequest,
) (*driving.HarvestResult, error) {
	return m.result, m.err
}

// mockProfileSearchService returns canned retrieval results.
type mockProfileSearchService struct {
	result *driven.RetrievalResult
	status *driving.StoreStatus
	err    error
}

func (m *mockProfileSearchService) Search(
	_ context.Context, _ domain.SearchRequest,
) (*driven.RetrievalResult, error) {
	return m.result, m.err
}

func (m *mockProfileSearchService) Status(
	_ context.Context, _ string,
) (*driving.StoreStatus, error) {
	return m.status, m.err
}

// mockDirectoryService returns canned summaries.
type mockDirectoryService struct {
	orgs    []domain.OrganizationSummary
	authors []domain.ResearcherSummary
	err     error
}

func (m *mockDirectoryService) SearchOrganizations(
	_ context.Context, _ string, _ int,
) ([]domain.OrganizationSummary, error) {
	return m.orgs, m.err
}

func (m *mockDirectoryService) SearchResearchers(
	_ context.Context, _ string, _ int,
) ([]domain.ResearcherSummary, error) {
	return m.authors, m.err
}

// mockRunStore serves harvest history from memory.
type mockRunStore struct {
	runs []domain.HarvestRun
	run  *domain.HarvestRun
	err  error
}

func (m *mockRunStore) SaveRun(_ context.Context, run domain.HarvestRun) (string, error) {
	return run.ID, m.err
}

func (m *mockRunStore) ListRuns(_ context.Context) ([]domain.HarvestRun, error) {
	return m.runs, m.err
}

func (m *mockRunStore) GetRun(_ context.Context, _ string) (*domain.HarvestRun, error) {
	if m.run == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.run, m.err
}

func (m *mockRunStore) Close() error { return nil }

var errMockFailure = errors.New("mock failure")

// setupTestServices swaps the package services for mocks and returns a
// cleanup restoring the previous wiring.
func setupTestServices() func() {
	oldIngest := ingestService
	oldSearch := profileSearchService
	oldDirectory := directoryService
	oldRuns := runStore
	oldBroadcaster := progressBroadcaster

	ingestService = &mockIngestService{
		result: &driving.HarvestResult{
			Organization: domain.NewOrganization("https://openalex.org/I42"),
			Researchers:  make([]domain.Researcher, 3),
			PagesFetched: 1,
			StoreName:    "profscout-I42",
			Indexed:      true,
			RunID:        "run-1",
		},
	}
	profileSearchService = &mockProfileSearchService{
		result: &driven.RetrievalResult{
			Hits: []driven.RetrievalHit{
				{Filename: "professors.md", Score: 0.93, Content: "# Jane Doe\nRobotics."},
			},
		},
		status: &driving.StoreStatus{
			StoreName: "profscout-I42",
			Info:      &driven.StoreInfo{Name: "profscout-I42", FileCount: 1},
		},
	}
	directoryService = &mockDirectoryService{
		orgs: []domain.OrganizationSummary{
			{ID: "https://openalex.org/I42", DisplayName: "MIT", CountryCode: "US"},
		},
		authors: []domain.ResearcherSummary{
			{ID: "https://openalex.org/A1", DisplayName: "Carl Sagan", WorksCount: 120},
		},
	}
	runStore = &mockRunStore{
		runs: []domain.HarvestRun{{ID: "run-1", OrganizationKey: "I42", RecordCount: 3, Indexed: true}},
		run:  &domain.HarvestRun{ID: "run-1", Document: "# Jane Doe\n"},
	}
	progressBroadcaster = nil

	return func() {
		ingestService = oldIngest
		profileSearchService = oldSearch
		directoryService = oldDirectory
		runStore = oldRuns
		progressBroadcaster = oldBroadcaster
	}
}
