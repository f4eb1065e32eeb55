package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for profscout resources.
const uriScheme = "profscout://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing harvest runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "harvest-runs",
		Description: "History of completed harvest runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	// Template for a run's combined profile document.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}/document",
		Name:        "run-document",
		Description: "Combined profile document produced by a harvest run",
		MIMEType:    "text/markdown",
	}, s.handleRunDocumentResource)
}

// handleRunsResource returns the recorded harvest runs, newest first.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ports := s.currentPorts()
	if ports.Runs == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	runs, err := ports.Runs.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	// Build simplified run list.
	type runInfo struct {
		ID              string `json:"id"`
		OrganizationID  string `json:"organization_id"`
		OrganizationKey string `json:"organization_key"`
		RecordCount     int    `json:"record_count"`
		PagesFetched    int    `json:"pages_fetched"`
		Indexed         bool   `json:"indexed"`
		CreatedAt       string `json:"created_at"`
	}

	infos := make([]runInfo, len(runs))
	for i, run := range runs {
		infos[i] = runInfo{
			ID:              run.ID,
			OrganizationID:  run.OrganizationID,
			OrganizationKey: run.OrganizationKey,
			RecordCount:     run.RecordCount,
			PagesFetched:    run.PagesFetched,
			Indexed:         run.Indexed,
			CreatedAt:       run.CreatedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRunDocumentResource returns the profile document for a specific run.
func (s *Server) handleRunDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ports := s.currentPorts()
	if ports.Runs == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := ports.Runs.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     run.Document,
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like profscout://runs/{runId}/document.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"
	const suffix = "/document"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
