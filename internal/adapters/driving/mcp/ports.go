package mcp

import (
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ingest runs the harvest pipeline.
	Ingest driving.IngestService

	// Search retrieves from scoped profile stores.
	Search driving.ProfileSearchService

	// Directory provides free-text institution and author lookups.
	Directory driving.DirectoryService

	// Runs exposes local harvest history. Optional; the runs resources
	// return empty listings when absent.
	Runs driven.HarvestRunStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Directory and Runs are optional
	return nil
}
