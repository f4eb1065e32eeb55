package driving

import (
	"context"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// StoreStatus reports scoped store existence and metadata for observability.
type StoreStatus struct {
	// StoreName is the scoped store name that was probed.
	StoreName string

	// Info is the backend metadata for the store.
	Info *driven.StoreInfo
}

// ProfileSearchService retrieves from an organization's scoped profile store
// under query-abuse guardrails.
type ProfileSearchService interface {
	// Search validates the request and dispatches it to the backend.
	// Guard rejections surface as domain.ErrQueryTooBroad before any
	// backend call is made.
	Search(ctx context.Context, req domain.SearchRequest) (*driven.RetrievalResult, error)

	// Status probes the scoped store for an organization key.
	Status(ctx context.Context, organizationKey string) (*StoreStatus, error)
}

// DirectoryService exposes lightweight free-text lookups against the
// academic graph, independent of any scoped store.
type DirectoryService interface {
	// SearchOrganizations searches institutions by name or place.
	SearchOrganizations(ctx context.Context, query string, limit int) ([]domain.OrganizationSummary, error)

	// SearchResearchers searches authors by name or keywords.
	SearchResearchers(ctx context.Context, query string, limit int) ([]domain.ResearcherSummary, error)
}
