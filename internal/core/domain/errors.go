package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates identity resolution yielded nothing.
	ErrNotFound = errors.New("not found")

	// ErrStoreNotFound indicates a scoped profile store does not exist.
	// The indexing backend signals this distinctly from other failures,
	// and it is the only condition under which store creation is attempted.
	ErrStoreNotFound = errors.New("store not found")

	// ErrUpstream indicates a non-success response from an external API.
	// A single upstream failure is terminal for the call; there is no
	// retry or backoff anywhere in the core.
	ErrUpstream = errors.New("upstream error")

	// ErrQueryTooBroad indicates a retrieval query was rejected by the
	// query guard before any backend call was made.
	ErrQueryTooBroad = errors.New("query too broad")

	// ErrProviderMisconfigured indicates a required credential or
	// configuration value is missing.
	ErrProviderMisconfigured = errors.New("provider misconfigured")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
