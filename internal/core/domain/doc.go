// Package domain defines the core business entities for profscout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Organization: A resolved academic institution with its scoping key
//   - Researcher: One harvested author record from the academic graph
//   - Profile helpers: The markdown document contract for synthesized profiles
//   - SearchRequest: A guarded retrieval request against a scoped store
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
