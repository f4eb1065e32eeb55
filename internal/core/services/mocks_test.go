package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// mockGraph implements driven.AcademicGraph for testing.
type mockGraph struct {
	orgs    []domain.OrganizationSummary
	orgsErr error

	authors    []domain.ResearcherSummary
	authorsErr error

	pages       []driven.ResearcherPage
	listErr     error
	listCalls   int
	lastFilter  driven.ResearcherFilter
	lastCursors []string

	// alwaysMore makes every page return a non-empty next cursor,
	// simulating an upstream that never runs out of data.
	alwaysMore bool
}

func (m *mockGraph) SearchOrganizations(_ context.Context, _ string, _ int) ([]domain.OrganizationSummary, error) {
	if m.orgsErr != nil {
		return nil, m.orgsErr
	}
	return m.orgs, nil
}

func (m *mockGraph) SearchResearchers(_ context.Context, _ string, _ int) ([]domain.ResearcherSummary, error) {
	if m.authorsErr != nil {
		return nil, m.authorsErr
	}
	return m.authors, nil
}

func (m *mockGraph) ListResearchers(
	_ context.Context, filter driven.ResearcherFilter, _ int, cursor string,
) (*driven.ResearcherPage, error) {
	m.lastFilter = filter
	m.lastCursors = append(m.lastCursors, cursor)
	if m.listErr != nil {
		return nil, m.listErr
	}

	if m.alwaysMore {
		m.listCalls++
		return &driven.ResearcherPage{
			Records:    []domain.Researcher{{ID: "A"}},
			NextCursor: "more",
		}, nil
	}

	if m.listCalls >= len(m.pages) {
		return &driven.ResearcherPage{}, nil
	}
	page := m.pages[m.listCalls]
	m.listCalls++
	return &page, nil
}

// mockIndex implements driven.IndexStore for testing.
type mockIndex struct {
	mu sync.Mutex

	retrieveInfo *driven.StoreInfo
	retrieveErr  error
	createErr    error
	uploadErr    error
	searchResult *driven.RetrievalResult
	searchErr    error

	retrieveCalls int
	createCalls   int
	uploads       []driven.UploadRequest
	uploadStores  []string
	searchStores  []string
	answerCalls   int
	searchCalls   int
}

func (m *mockIndex) RetrieveStore(_ context.Context, name string) (*driven.StoreInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retrieveCalls++
	if m.retrieveErr != nil {
		return nil, m.retrieveErr
	}
	if m.retrieveInfo != nil {
		return m.retrieveInfo, nil
	}
	return &driven.StoreInfo{Name: name}, nil
}

func (m *mockIndex) CreateStore(_ context.Context, name, _ string) (*driven.StoreInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &driven.StoreInfo{Name: name}, nil
}

func (m *mockIndex) UploadDocument(_ context.Context, store string, req driven.UploadRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.uploadErr != nil {
		return m.uploadErr
	}
	m.uploadStores = append(m.uploadStores, store)
	m.uploads = append(m.uploads, req)
	return nil
}

func (m *mockIndex) Search(
	_ context.Context, stores []string, _ string, _ int, _ bool,
) (*driven.RetrievalResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	m.searchStores = stores
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if m.searchResult != nil {
		return m.searchResult, nil
	}
	return &driven.RetrievalResult{}, nil
}

func (m *mockIndex) Answer(
	_ context.Context, stores []string, _ string, _ int, _ bool,
) (*driven.RetrievalResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answerCalls++
	m.searchStores = stores
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if m.searchResult != nil {
		return m.searchResult, nil
	}
	return &driven.RetrievalResult{Answer: "answer"}, nil
}

// mockRunStore implements driven.HarvestRunStore for testing.
type mockRunStore struct {
	saved   []domain.HarvestRun
	saveErr error
}

func (m *mockRunStore) SaveRun(_ context.Context, run domain.HarvestRun) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved = append(m.saved, run)
	return "run-1", nil
}

func (m *mockRunStore) ListRuns(_ context.Context) ([]domain.HarvestRun, error) {
	return m.saved, nil
}

func (m *mockRunStore) GetRun(_ context.Context, _ string) (*domain.HarvestRun, error) {
	return nil, domain.ErrNotFound
}

func (m *mockRunStore) Close() error { return nil }

// recordingSink collects published progress events.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.ProgressEvent
}

func (s *recordingSink) Publish(event domain.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Events() []domain.ProgressEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ProgressEvent, len(s.events))
	copy(out, s.events)
	return out
}
