package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

func TestValidateQuery_LengthBoundary(t *testing.T) {
	assert.NoError(t, ValidateQuery(strings.Repeat("a", 240)))
	assert.ErrorIs(t, ValidateQuery(strings.Repeat("a", 241)), domain.ErrQueryTooBroad)
	assert.ErrorIs(t, ValidateQuery(strings.Repeat("a", 300)), domain.ErrQueryTooBroad)
}

func TestValidateQuery_LengthCountsCharactersNotBytes(t *testing.T) {
	// Two-byte runes: 240 characters must pass even though the byte
	// length is twice the limit.
	assert.NoError(t, ValidateQuery(strings.Repeat("é", 240)))
	assert.ErrorIs(t, ValidateQuery(strings.Repeat("é", 241)), domain.ErrQueryTooBroad)
}

func TestValidateQuery_ORTokenBoundary(t *testing.T) {
	assert.NoError(t, ValidateQuery("a OR b OR c OR d OR e"))
	assert.ErrorIs(t, ValidateQuery("a OR b OR c OR d OR e OR f"), domain.ErrQueryTooBroad)
}

func TestValidateQuery_ORTokenMatching(t *testing.T) {
	// Case-insensitive and punctuation-adjacent tokens count.
	assert.ErrorIs(t, ValidateQuery("a or b Or c oR d OR e or f"), domain.ErrQueryTooBroad)
	assert.ErrorIs(t, ValidateQuery("(a) OR (b) OR (c) OR (d) OR (e) OR (f)"), domain.ErrQueryTooBroad)

	// "OR" embedded in longer words does not count.
	assert.NoError(t, ValidateQuery("organic orbits majoring in oratory for corn"))
}

func TestValidateQuery_PlainQueriesPass(t *testing.T) {
	assert.NoError(t, ValidateQuery("professors working on protein folding"))
	assert.NoError(t, ValidateQuery(""))
}
