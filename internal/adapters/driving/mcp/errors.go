// Package mcp provides an MCP (Model Context Protocol) server adapter for
// profscout. It lets AI assistants harvest researcher profiles and search
// the indexed stores.
package mcp

import "errors"

// ErrMissingIngestService is returned when the ingest service is not provided.
var ErrMissingIngestService = errors.New("mcp: ingest service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
