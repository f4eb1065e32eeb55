package openalex

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// APIError represents a non-success OpenAlex response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openalex: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap classifies every API error as an upstream failure, so callers can
// match errors.Is(err, domain.ErrUpstream) without importing this package.
func (e *APIError) Unwrap() error {
	return domain.ErrUpstream
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}
