package domain

// SearchMode selects the retrieval call made against the indexing backend.
type SearchMode string

const (
	// ModeSearch runs a plain semantic search.
	ModeSearch SearchMode = "search"

	// ModeAnswer runs a question-answering call over the search results.
	ModeAnswer SearchMode = "answer"
)

// Query guard limits. Queries exceeding either bound are rejected before
// any backend call to prevent batching many searches into one broad query.
const (
	// MaxQueryLength is the maximum accepted query length in characters.
	// A query of exactly this length passes.
	MaxQueryLength = 240

	// MaxORTokens is the maximum accepted count of standalone,
	// case-insensitive "OR" tokens. Exactly this many pass.
	MaxORTokens = 4
)

// SearchRequest is a validated retrieval request against one organization's
// scoped profile store. Transient; validated before dispatch.
type SearchRequest struct {
	// Query is the natural language search text.
	Query string

	// OrganizationKey scopes the request to one institution's store.
	OrganizationKey string

	// TopK is the maximum number of results (default applied by the
	// gateway when zero).
	TopK int

	// Rerank enables the backend's post-retrieval reordering step.
	Rerank bool

	// Mode selects semantic search or question answering.
	Mode SearchMode
}
