package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// ValidateQuery rejects queries that are too long or contain too many
// boolean OR clauses. Batching many searches into one broad query defeats
// per-query relevance tuning and inflates backend cost, so such queries are
// refused before any backend call. Length exactly MaxQueryLength and exactly
// MaxORTokens OR tokens both pass.
func ValidateQuery(text string) error {
	// Length is measured in characters, not bytes, so multi-byte scripts
	// get the same budget.
	if n := utf8.RuneCountInString(text); n > domain.MaxQueryLength {
		return fmt.Errorf("%w: query is %d characters (limit %d); use a single, focused query",
			domain.ErrQueryTooBroad, n, domain.MaxQueryLength)
	}
	if n := countORTokens(text); n > domain.MaxORTokens {
		return fmt.Errorf("%w: query contains %d OR clauses (limit %d); use a single, focused query instead of batching",
			domain.ErrQueryTooBroad, n, domain.MaxORTokens)
	}
	return nil
}

// countORTokens counts standalone case-insensitive "OR" words. "OR" inside
// a longer word does not count; punctuation does not hide a token.
func countORTokens(text string) int {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	n := 0
	for _, word := range words {
		if strings.EqualFold(word, "or") {
			n++
		}
	}
	return n
}
