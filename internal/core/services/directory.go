package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DefaultDirectoryLimit bounds free-text directory lookups.
const DefaultDirectoryLimit = 20

// MaxDirectoryLimit is the largest accepted directory lookup limit.
const MaxDirectoryLimit = 50

// DirectoryService exposes lightweight free-text lookups against the
// academic graph.
type DirectoryService struct {
	graph driven.AcademicGraph
}

// NewDirectoryService creates a directory service.
func NewDirectoryService(graph driven.AcademicGraph) *DirectoryService {
	return &DirectoryService{graph: graph}
}

// SearchOrganizations searches institutions by name, city, or place.
func (s *DirectoryService) SearchOrganizations(
	ctx context.Context, query string, limit int,
) ([]domain.OrganizationSummary, error) {
	query, limit, err := normalizeLookup(query, limit)
	if err != nil {
		return nil, err
	}
	return s.graph.SearchOrganizations(ctx, query, limit)
}

// SearchResearchers searches authors by name or keywords.
func (s *DirectoryService) SearchResearchers(
	ctx context.Context, query string, limit int,
) ([]domain.ResearcherSummary, error) {
	query, limit, err := normalizeLookup(query, limit)
	if err != nil {
		return nil, err
	}
	return s.graph.SearchResearchers(ctx, query, limit)
}

func normalizeLookup(query string, limit int) (string, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", 0, fmt.Errorf("%w: empty search query", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultDirectoryLimit
	}
	if limit > MaxDirectoryLimit {
		limit = MaxDirectoryLimit
	}
	return query, limit, nil
}
