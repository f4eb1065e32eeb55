package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/logger"
)

// Resolver turns a free-text name, raw identifier, or OpenAlex URL into one
// canonical organization.
type Resolver struct {
	graph driven.AcademicGraph
}

// NewResolver creates a new resolver.
func NewResolver(graph driven.AcademicGraph) *Resolver {
	return &Resolver{graph: graph}
}

// Resolve canonicalizes a reference. References already shaped like a
// canonical identifier pass through without a name search. Free-text names
// resolve to the first search hit; ambiguous names are not disambiguated.
func (r *Resolver) Resolve(ctx context.Context, reference string) (domain.Organization, error) {
	candidate := strings.TrimSpace(reference)
	if candidate == "" {
		return domain.Organization{}, fmt.Errorf("%w: empty organization reference", domain.ErrInvalidInput)
	}

	// URLs carry the identifier as their last path segment.
	if strings.HasPrefix(candidate, "http") {
		candidate = domain.KeyFromID(candidate)
	}

	if domain.IsCanonicalOrgID(candidate) {
		logger.Debug("Resolver: %q is already canonical", candidate)
		return domain.NewOrganization(candidate), nil
	}

	logger.Debug("Resolver: searching institutions for %q", candidate)
	hits, err := r.graph.SearchOrganizations(ctx, candidate, 1)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("search organizations: %w", err)
	}
	if len(hits) == 0 {
		return domain.Organization{}, fmt.Errorf("%w: no institution matches %q", domain.ErrNotFound, reference)
	}

	org := domain.NewOrganization(hits[0].ID)
	logger.Info("Resolver: %q resolved to %s (key %s)", reference, org.ID, org.Key)
	return org, nil
}
