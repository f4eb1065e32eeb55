package mixedbread

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.IndexStore = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.mixedbread.com/v1"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Mixedbread client.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL is the API base URL (default: https://api.mixedbread.com/v1).
	BaseURL string

	// Timeout is the request timeout (default: 60s). Uploads index
	// synchronously, so this is generous.
	Timeout time.Duration
}

// Client is a Mixedbread API client implementing the IndexStore port.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a new Mixedbread client. Returns an error when the API
// key is missing so misconfiguration surfaces at startup, not mid-harvest.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mixedbread API key is required: %w", domain.ErrProviderMisconfigured)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// RetrieveStore fetches metadata for a store by name. A 404 maps to
// domain.ErrStoreNotFound.
func (c *Client) RetrieveStore(ctx context.Context, name string) (*driven.StoreInfo, error) {
	var s store
	err := c.doJSON(ctx, http.MethodGet, "/stores/"+name, nil, &s)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("store %q: %w", name, domain.ErrStoreNotFound)
		}
		return nil, err
	}
	return s.toInfo(), nil
}

// CreateStore creates a new store.
func (c *Client) CreateStore(ctx context.Context, name, description string) (*driven.StoreInfo, error) {
	var s store
	err := c.doJSON(ctx, http.MethodPost, "/stores", createStoreRequest{
		Name:        name,
		Description: description,
	}, &s)
	if err != nil {
		return nil, err
	}
	return s.toInfo(), nil
}

// UploadDocument uploads one document into a store as a multipart file.
func (c *Client) UploadDocument(ctx context.Context, storeName string, req driven.UploadRequest) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", req.Filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write([]byte(req.Content)); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := w.WriteField("external_id", req.ExternalID); err != nil {
		return fmt.Errorf("write external_id field: %w", err)
	}
	if err := w.WriteField("overwrite", strconv.FormatBool(req.Overwrite)); err != nil {
		return fmt.Errorf("write overwrite field: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	url := c.baseURL + "/stores/" + storeName + "/files"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(body), URL: url}
	}
	return nil
}

// Search runs a semantic search scoped to the named stores.
func (c *Client) Search(
	ctx context.Context, stores []string, query string, topK int, rerank bool,
) (*driven.RetrievalResult, error) {
	return c.retrieve(ctx, "/stores/search", stores, query, topK, rerank)
}

// Answer runs a question-answering call scoped to the named stores.
func (c *Client) Answer(
	ctx context.Context, stores []string, query string, topK int, rerank bool,
) (*driven.RetrievalResult, error) {
	return c.retrieve(ctx, "/stores/question-answering", stores, query, topK, rerank)
}

func (c *Client) retrieve(
	ctx context.Context, path string, stores []string, query string, topK int, rerank bool,
) (*driven.RetrievalResult, error) {
	var resp searchResponse
	err := c.doJSON(ctx, http.MethodPost, path, searchRequest{
		Query:            query,
		StoreIdentifiers: stores,
		TopK:             topK,
		SearchOptions:    searchOptions{Rerank: rerank},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toResult(), nil
}

// doJSON performs an authenticated JSON round trip. Non-2xx responses
// become an *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(data), URL: url}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
