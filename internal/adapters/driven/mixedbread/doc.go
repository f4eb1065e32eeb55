// Package mixedbread implements the IndexStore port against the Mixedbread
// vector store API (https://api.mixedbread.com).
//
// Stores are addressed by name. A missing store surfaces as
// domain.ErrStoreNotFound so callers can distinguish "create it" from
// "the backend is down".
package mixedbread
