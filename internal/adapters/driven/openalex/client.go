package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.AcademicGraph = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openalex.org"
	DefaultTimeout = 30 * time.Second

	// OpenAlex allows 10 requests/second; stay below it.
	defaultRequestsPerSecond = 8
	defaultBurstSize         = 4
)

// Config holds configuration for the OpenAlex client.
type Config struct {
	// BaseURL is the API base URL (default: https://api.openalex.org).
	BaseURL string

	// Mailto is the contact address sent with every request to join the
	// polite pool. Optional but recommended.
	Mailto string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client is an OpenAlex API client implementing the AcademicGraph port.
type Client struct {
	client  *http.Client
	baseURL string
	mailto  string
	limiter *rate.Limiter
}

// NewClient creates a new OpenAlex client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		mailto:  cfg.Mailto,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurstSize),
	}
}

// SearchOrganizations searches institutions by free text.
func (c *Client) SearchOrganizations(
	ctx context.Context, query string, limit int,
) ([]domain.OrganizationSummary, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("per-page", strconv.Itoa(limit))

	var resp listResponse[institution]
	if err := c.getJSON(ctx, "/institutions", params, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.OrganizationSummary, len(resp.Results))
	for i, inst := range resp.Results {
		out[i] = inst.toDomain()
	}
	return out, nil
}

// SearchResearchers searches authors by free text.
func (c *Client) SearchResearchers(
	ctx context.Context, query string, limit int,
) ([]domain.ResearcherSummary, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("per-page", strconv.Itoa(limit))

	var resp listResponse[author]
	if err := c.getJSON(ctx, "/authors", params, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.ResearcherSummary, len(resp.Results))
	for i, a := range resp.Results {
		out[i] = a.toSummary()
	}
	return out, nil
}

// ListResearchers fetches one page of a cursor-paginated author listing.
func (c *Client) ListResearchers(
	ctx context.Context, filter driven.ResearcherFilter, pageSize int, cursor string,
) (*driven.ResearcherPage, error) {
	params := url.Values{}
	params.Set("filter", buildAuthorFilter(filter))
	params.Set("per-page", strconv.Itoa(pageSize))
	params.Set("cursor", cursor)
	params.Set("select", authorSelectFields)

	var resp listResponse[author]
	if err := c.getJSON(ctx, "/authors", params, &resp); err != nil {
		return nil, err
	}

	page := &driven.ResearcherPage{
		Records:    make([]domain.Researcher, len(resp.Results)),
		NextCursor: resp.Meta.NextCursor,
	}
	for i, a := range resp.Results {
		page.Records[i] = a.toDomain()
	}
	return page, nil
}

// getJSON performs a rate-limited GET and decodes the JSON response.
// Non-2xx responses become an *APIError.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			URL:        reqURL,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
