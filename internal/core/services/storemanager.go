package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/logger"
)

// ProfilesFilename is the fixed filename for the combined profile document
// within a scoped store.
const ProfilesFilename = "professors.md"

// storeDescription is attached to newly created scoped stores.
const storeDescription = "profscout store - researcher profile semantic search"

// ScopedStoreName computes the store name for an organization key. Both the
// ingestion and retrieval paths use this same convention; they must never
// diverge.
func ScopedStoreName(base, organizationKey string) string {
	return base + "-" + organizationKey
}

// StoreManager owns scoped store lifecycle decisions: lazy idempotent
// creation and overwriting uploads. A per-key mutex serializes the
// ensure/upload sequence so concurrent ingestions for the same organization
// cannot interleave.
type StoreManager struct {
	index    driven.IndexStore
	baseName string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStoreManager creates a store manager. baseName is the configured store
// name prefix, threaded in at construction rather than read from the
// environment.
func NewStoreManager(index driven.IndexStore, baseName string) *StoreManager {
	return &StoreManager{
		index:    index,
		baseName: baseName,
		locks:    make(map[string]*sync.Mutex),
	}
}

// StoreName returns the scoped store name for an organization key.
func (m *StoreManager) StoreName(organizationKey string) string {
	return ScopedStoreName(m.baseName, organizationKey)
}

// UploadProfiles ensures the scoped store exists and uploads the combined
// document with overwrite semantics, so repeated ingestion replaces rather
// than accumulates. The whole sequence holds the per-key lock.
func (m *StoreManager) UploadProfiles(ctx context.Context, organizationKey, text string) error {
	lock := m.keyLock(organizationKey)
	lock.Lock()
	defer lock.Unlock()

	name := m.StoreName(organizationKey)
	if err := m.ensureStore(ctx, name); err != nil {
		return err
	}

	req := driven.UploadRequest{
		Filename:   ProfilesFilename,
		ExternalID: name + "-professors",
		Content:    text,
		Overwrite:  true,
	}
	if err := m.index.UploadDocument(ctx, name, req); err != nil {
		return fmt.Errorf("upload profiles to %s: %w", name, err)
	}

	logger.Info("StoreManager: uploaded %d bytes to %s", len(text), name)
	return nil
}

// ensureStore retrieves the store and creates it only when retrieval signals
// not-found. Any other retrieval error propagates unchanged; creation is
// never attempted speculatively.
func (m *StoreManager) ensureStore(ctx context.Context, name string) error {
	_, err := m.index.RetrieveStore(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStoreNotFound) {
		return fmt.Errorf("retrieve store %s: %w", name, err)
	}

	logger.Debug("StoreManager: creating store %s", name)
	if _, err := m.index.CreateStore(ctx, name, storeDescription); err != nil {
		return fmt.Errorf("create store %s: %w", name, err)
	}
	return nil
}

// keyLock returns the mutex for an organization key, creating it on first
// use.
func (m *StoreManager) keyLock(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	return lock
}
