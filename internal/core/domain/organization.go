package domain

import "strings"

// Organization is a resolved academic institution.
type Organization struct {
	// ID is the canonical OpenAlex identifier, usually a full URL such as
	// "https://openalex.org/I97018004".
	ID string

	// Key is the short scoping key derived from ID. It is always the last
	// path segment of ID and is never supplied independently.
	Key string
}

// NewOrganization builds an Organization from a canonical identifier,
// deriving the key from its last path segment.
func NewOrganization(id string) Organization {
	return Organization{
		ID:  id,
		Key: KeyFromID(id),
	}
}

// KeyFromID returns the last path segment of a canonical identifier.
// Returns the input unchanged when it contains no path separator.
func KeyFromID(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}

// IsCanonicalOrgID reports whether s already has the canonical institution
// identifier shape: an "I" prefix followed by at least one digit.
func IsCanonicalOrgID(s string) bool {
	if len(s) < 2 || s[0] != 'I' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// OrganizationSummary is a lightweight institution listing entry, used by
// the free-text institution search operations.
type OrganizationSummary struct {
	ID          string
	DisplayName string
	CountryCode string
	Type        string
	HomepageURL string
	ROR         string
}
