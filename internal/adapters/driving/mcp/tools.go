package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driving"
)

// Directory lookup limits mirror the service defaults; tool inputs outside
// the range are clamped by the service, not rejected here.
const defaultDirectoryLimit = 20

// HarvestInput is the input schema for the harvest_professors tool.
type HarvestInput struct {
	Organization string `json:"organization" jsonschema:"institution name, canonical ID, or OpenAlex URL to harvest"`
	PageSize     int    `json:"page_size,omitempty" jsonschema:"page size used while paginating (1-200, default 200)"`
}

// HarvestOutput is the output schema for the harvest_professors tool.
type HarvestOutput struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	Key            string `json:"key,omitempty"`
	Count          int    `json:"count"`
	PagesFetched   int    `json:"pages_fetched"`
	Store          string `json:"store,omitempty"`
	Indexed        bool   `json:"indexed"`
	RunID          string `json:"run_id,omitempty"`
}

// SearchInput is the input schema for the profile_search tool.
type SearchInput struct {
	Query          string `json:"query" jsonschema:"a single focused natural language search query (do not batch multiple queries together)"`
	Institution    string `json:"institution" jsonschema:"OpenAlex institution identifier selecting the profile store (e.g. I123... or full OpenAlex URL)"`
	MaxCount       int    `json:"max_count,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	GenerateAnswer bool   `json:"generate_answer,omitempty" jsonschema:"generate an answer from the results instead of returning raw matches"`
}

// SearchOutput is the output schema for the profile_search tool.
type SearchOutput struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Store   string            `json:"store,omitempty"`
	Answer  string            `json:"answer,omitempty"`
	Results []SearchHitOutput `json:"results,omitempty"`
	Count   int               `json:"count"`
}

// SearchHitOutput represents a single scored result chunk.
type SearchHitOutput struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Content  string  `json:"content,omitempty"`
}

// StatusInput is the input schema for the store_status tool.
type StatusInput struct {
	Institution string `json:"institution" jsonschema:"OpenAlex institution identifier selecting the profile store"`
}

// StatusOutput is the output schema for the store_status tool.
type StatusOutput struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Store     string `json:"store,omitempty"`
	Exists    bool   `json:"exists"`
	FileCount int    `json:"file_count"`
}

// DirectoryInput is the input schema for the institution and author search tools.
type DirectoryInput struct {
	Query   string `json:"query" jsonschema:"free-text search query"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"maximum number of results to return (1-50, default 20)"`
}

// InstitutionsOutput is the output schema for the institution search tools.
type InstitutionsOutput struct {
	Success      bool                `json:"success"`
	Error        string              `json:"error,omitempty"`
	Count        int                 `json:"count"`
	Institutions []InstitutionOutput `json:"institutions,omitempty"`
}

// InstitutionOutput represents one institution summary.
type InstitutionOutput struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CountryCode string `json:"country_code,omitempty"`
	Type        string `json:"type,omitempty"`
	HomepageURL string `json:"homepage_url,omitempty"`
	ROR         string `json:"ror,omitempty"`
}

// AuthorsOutput is the output schema for the search_authors tool.
type AuthorsOutput struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Count   int            `json:"count"`
	Authors []AuthorOutput `json:"authors,omitempty"`
}

// AuthorOutput represents one author summary.
type AuthorOutput struct {
	ID                   string `json:"id"`
	DisplayName          string `json:"display_name"`
	ORCID                string `json:"orcid,omitempty"`
	WorksCount           int    `json:"works_count"`
	CitedByCount         int    `json:"cited_by_count"`
	LastKnownInstitution string `json:"last_known_institution,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "harvest_professors",
		Description: "Resolve an institution, harvest its researchers from OpenAlex, " +
			"and index synthesized profiles into the institution's semantic store",
	}, s.handleHarvest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "profile_search",
		Description: "Search indexed researcher profiles using a single, focused natural " +
			"language query (do not batch multiple queries together)",
	}, s.handleProfileSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "store_status",
		Description: "Check whether an institution's profile store exists and is accessible",
	}, s.handleStoreStatus)

	if s.ports.Directory != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_institutions",
			Description: "Search OpenAlex institutions by name or keywords and return a lightweight summary list",
		}, s.handleSearchInstitutions)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "institutions_by_place",
			Description: "Get a list of institutions in a given country, city, or region",
		}, s.handleSearchInstitutions)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_authors",
			Description: "Search OpenAlex authors by name or keywords and return a lightweight summary list",
		}, s.handleSearchAuthors)
	}
}

// handleHarvest handles the harvest_professors tool invocation. Failures are
// reported in the output envelope so assistants can react to them.
func (s *Server) handleHarvest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HarvestInput,
) (*mcp.CallToolResult, HarvestOutput, error) {
	result, err := s.currentPorts().Ingest.Harvest(ctx, driving.HarvestRequest{
		OrganizationQuery: input.Organization,
		PageSize:          input.PageSize,
	})
	if err != nil {
		return nil, HarvestOutput{
			Error: fmt.Sprintf("Failed to fetch professors: %v", err),
		}, nil
	}

	return nil, HarvestOutput{
		Success:        true,
		OrganizationID: result.Organization.ID,
		Key:            result.Organization.Key,
		Count:          len(result.Researchers),
		PagesFetched:   result.PagesFetched,
		Store:          result.StoreName,
		Indexed:        result.Indexed,
		RunID:          result.RunID,
	}, nil
}

// handleProfileSearch handles the profile_search tool invocation.
func (s *Server) handleProfileSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	mode := domain.ModeSearch
	if input.GenerateAnswer {
		mode = domain.ModeAnswer
	}

	result, err := s.currentPorts().Search.Search(ctx, domain.SearchRequest{
		Query:           input.Query,
		OrganizationKey: input.Institution,
		TopK:            input.MaxCount,
		Rerank:          true,
		Mode:            mode,
	})
	if err != nil {
		return nil, SearchOutput{
			Error: fmt.Sprintf("Search failed: %v", err),
		}, nil
	}

	output := SearchOutput{
		Success: true,
		Answer:  result.Answer,
		Results: make([]SearchHitOutput, len(result.Hits)),
		Count:   len(result.Hits),
	}
	for i, hit := range result.Hits {
		output.Results[i] = SearchHitOutput{
			Filename: hit.Filename,
			Score:    hit.Score,
			Content:  hit.Content,
		}
	}

	return nil, output, nil
}

// handleStoreStatus handles the store_status tool invocation.
func (s *Server) handleStoreStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	status, err := s.currentPorts().Search.Status(ctx, input.Institution)
	if errors.Is(err, domain.ErrStoreNotFound) {
		// Absence is a valid answer, not a failure.
		return nil, StatusOutput{Success: true, Exists: false}, nil
	}
	if err != nil {
		return nil, StatusOutput{
			Error: fmt.Sprintf("Status check failed: %v", err),
		}, nil
	}

	output := StatusOutput{
		Success: true,
		Store:   status.StoreName,
		Exists:  status.Info != nil,
	}
	if status.Info != nil {
		output.FileCount = status.Info.FileCount
	}

	return nil, output, nil
}

// handleSearchInstitutions handles both institution lookup tools.
func (s *Server) handleSearchInstitutions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DirectoryInput,
) (*mcp.CallToolResult, InstitutionsOutput, error) {
	ports := s.currentPorts()
	if ports.Directory == nil {
		return nil, InstitutionsOutput{Error: "Institution search is not available"}, nil
	}

	limit := input.PerPage
	if limit <= 0 {
		limit = defaultDirectoryLimit
	}

	institutions, err := ports.Directory.SearchOrganizations(ctx, input.Query, limit)
	if err != nil {
		return nil, InstitutionsOutput{
			Error: fmt.Sprintf("Failed to search institutions: %v", err),
		}, nil
	}

	output := InstitutionsOutput{
		Success:      true,
		Count:        len(institutions),
		Institutions: make([]InstitutionOutput, len(institutions)),
	}
	for i, inst := range institutions {
		output.Institutions[i] = InstitutionOutput{
			ID:          inst.ID,
			DisplayName: inst.DisplayName,
			CountryCode: inst.CountryCode,
			Type:        inst.Type,
			HomepageURL: inst.HomepageURL,
			ROR:         inst.ROR,
		}
	}

	return nil, output, nil
}

// handleSearchAuthors handles the search_authors tool invocation.
func (s *Server) handleSearchAuthors(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DirectoryInput,
) (*mcp.CallToolResult, AuthorsOutput, error) {
	ports := s.currentPorts()
	if ports.Directory == nil {
		return nil, AuthorsOutput{Error: "Author search is not available"}, nil
	}

	limit := input.PerPage
	if limit <= 0 {
		limit = defaultDirectoryLimit
	}

	authors, err := ports.Directory.SearchResearchers(ctx, input.Query, limit)
	if err != nil {
		return nil, AuthorsOutput{
			Error: fmt.Sprintf("Failed to search authors: %v", err),
		}, nil
	}

	output := AuthorsOutput{
		Success: true,
		Count:   len(authors),
		Authors: make([]AuthorOutput, len(authors)),
	}
	for i, a := range authors {
		output.Authors[i] = AuthorOutput{
			ID:                   a.ID,
			DisplayName:          a.DisplayName,
			ORCID:                a.ORCID,
			WorksCount:           a.WorksCount,
			CitedByCount:         a.CitedByCount,
			LastKnownInstitution: a.LastKnownInstitution,
		}
	}

	return nil, output, nil
}
