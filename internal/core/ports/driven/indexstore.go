package driven

import "context"

// StoreInfo is metadata about one scoped store on the indexing backend.
type StoreInfo struct {
	// Name is the scoped store name ("{base}-{organizationKey}").
	Name string

	// ExternalID is the backend's own identifier for the store, when the
	// backend assigns one.
	ExternalID string

	// FileCount is the number of documents currently in the store.
	FileCount int
}

// UploadRequest describes one document upload into a scoped store.
type UploadRequest struct {
	// Filename is the document filename within the store.
	Filename string

	// ExternalID is the stable identifier used for overwrite matching.
	ExternalID string

	// Content is the document body.
	Content string

	// Overwrite replaces any existing document with the same ExternalID
	// instead of accumulating a new one.
	Overwrite bool
}

// RetrievalResult is the backend-native retrieval envelope, passed through
// to callers unmodified.
type RetrievalResult struct {
	// Answer is the generated answer for question-answering calls, empty
	// for plain search.
	Answer string

	// Hits are the scored chunks returned by the backend.
	Hits []RetrievalHit
}

// RetrievalHit is one scored chunk from the indexing backend.
type RetrievalHit struct {
	Filename string
	Score    float64
	Content  string
}

// IndexStore is the semantic indexing backend holding scoped profile stores.
// RetrieveStore signals absence with domain.ErrStoreNotFound, distinctly
// from other failures.
type IndexStore interface {
	// RetrieveStore fetches metadata for a store by name.
	RetrieveStore(ctx context.Context, name string) (*StoreInfo, error)

	// CreateStore creates a new store.
	CreateStore(ctx context.Context, name, description string) (*StoreInfo, error)

	// UploadDocument uploads one document into a store.
	UploadDocument(ctx context.Context, store string, req UploadRequest) error

	// Search runs a semantic search scoped to the named stores.
	Search(ctx context.Context, stores []string, query string, topK int, rerank bool) (*RetrievalResult, error)

	// Answer runs a question-answering call scoped to the named stores.
	Answer(ctx context.Context, stores []string, query string, topK int, rerank bool) (*RetrievalResult, error)
}
