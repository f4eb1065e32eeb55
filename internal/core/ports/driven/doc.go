// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - AcademicGraph: OpenAlex-style scholarly graph API
//   - IndexStore: Semantic indexing backend holding scoped profile stores
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HarvestRunStore: Local harvest history. Without it, runs are not recorded.
//   - ProgressSink: Harvest progress notifications. Without it, events are dropped.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
