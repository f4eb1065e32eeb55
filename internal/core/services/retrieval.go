package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
	"github.com/custodia-labs/profscout/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.ProfileSearchService = (*RetrievalService)(nil)

// DefaultTopK is the result limit applied when a request leaves TopK unset.
const DefaultTopK = 10

// RetrievalService executes guarded retrieval against scoped profile stores.
// It shares the store-naming convention with the store manager but is
// otherwise independent of the ingestion path.
type RetrievalService struct {
	index    driven.IndexStore
	baseName string
}

// NewRetrievalService creates a retrieval service. baseName must match the
// store manager's configured base name.
func NewRetrievalService(index driven.IndexStore, baseName string) *RetrievalService {
	return &RetrievalService{index: index, baseName: baseName}
}

// Search validates the request, then dispatches a semantic search or a
// question-answering call depending on the mode. The backend-native result
// is returned unmodified.
func (s *RetrievalService) Search(
	ctx context.Context, req domain.SearchRequest,
) (*driven.RetrievalResult, error) {
	if err := ValidateQuery(req.Query); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(req.OrganizationKey)
	if key == "" {
		return nil, fmt.Errorf("%w: organization key is required", domain.ErrInvalidInput)
	}
	// Full OpenAlex URLs are accepted and reduced to their key.
	if strings.HasPrefix(key, "http") {
		key = domain.KeyFromID(key)
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	store := ScopedStoreName(s.baseName, key)
	logger.Debug("Retrieval: store=%s mode=%s topK=%d rerank=%t", store, req.Mode, topK, req.Rerank)

	var result *driven.RetrievalResult
	var err error
	if req.Mode == domain.ModeAnswer {
		result, err = s.index.Answer(ctx, []string{store}, req.Query, topK, req.Rerank)
	} else {
		result, err = s.index.Search(ctx, []string{store}, req.Query, topK, req.Rerank)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieve from %s: %w", store, err)
	}

	logger.Info("Retrieval: %d hits from %s", len(result.Hits), store)
	return result, nil
}

// Status probes the scoped store for an organization key, reporting its
// metadata for observability.
func (s *RetrievalService) Status(
	ctx context.Context, organizationKey string,
) (*driving.StoreStatus, error) {
	key := strings.TrimSpace(organizationKey)
	if strings.HasPrefix(key, "http") {
		key = domain.KeyFromID(key)
	}
	if key == "" {
		return nil, fmt.Errorf("%w: organization key is required", domain.ErrInvalidInput)
	}

	store := ScopedStoreName(s.baseName, key)
	info, err := s.index.RetrieveStore(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("store status %s: %w", store, err)
	}

	return &driving.StoreStatus{StoreName: store, Info: info}, nil
}
