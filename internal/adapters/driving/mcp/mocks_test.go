package mcp

import (
	"context"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
)

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	org     domain.Organization
	result  *driving.HarvestResult
	lastReq driving.HarvestRequest
	err     error
}

func (m *mockIngestService) Resolve(_ context.Context, _ string) (domain.Organization, error) {
	return m.org, m.err
}

func (m *mockIngestService) Harvest(
	_ context.Context, req driving.HarvestRequest,
) (*driving.HarvestResult, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockSearchService is a mock implementation of driving.ProfileSearchService.
type mockSearchService struct {
	result  *driven.RetrievalResult
	status  *driving.StoreStatus
	lastReq domain.SearchRequest
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context, req domain.SearchRequest,
) (*driven.RetrievalResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func (m *mockSearchService) Status(_ context.Context, _ string) (*driving.StoreStatus, error) {
	return m.status, m.err
}

// mockDirectoryService is a mock implementation of driving.DirectoryService.
type mockDirectoryService struct {
	orgs      []domain.OrganizationSummary
	authors   []domain.ResearcherSummary
	lastLimit int
	err       error
}

func (m *mockDirectoryService) SearchOrganizations(
	_ context.Context, _ string, limit int,
) ([]domain.OrganizationSummary, error) {
	m.lastLimit = limit
	return m.orgs, m.err
}

func (m *mockDirectoryService) SearchResearchers(
	_ context.Context, _ string, limit int,
) ([]domain.ResearcherSummary, error) {
	m.lastLimit = limit
	return m.authors, m.err
}

// mockRunStore is a mock implementation of driven.HarvestRunStore.
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
	return m.run, m.err
}

func (m *mockRunStore) Close() error {
	return nil
}
