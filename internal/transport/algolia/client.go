// Package algolia is a minimal client for the Algolia single-index query
// endpoint. It speaks the REST protocol directly; this repo only needs one
// operation and carries no indexing or ranking logic of its own.
package algolia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Config holds the remote index settings.
type Config struct {
	AppID     string
	APIKey    string
	IndexName string
	// BaseURL overrides the derived https://<app>-dsn.algolia.net host.
	// Used by tests and by self-hosted Algolia-compatible indexes.
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries one Algolia index.
type Client struct {
	baseURL string
	appID   string
	apiKey  string
	index   string
	http    *http.Client
}

// NewClient creates a query client for the configured index.
func NewClient(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s-dsn.algolia.net", strings.ToLower(cfg.AppID))
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   cfg.AppID,
		apiKey:  cfg.APIKey,
		index:   cfg.IndexName,
		http:    httpClient,
	}
}

// QueryParams is the payload for the query endpoint. Filters are omitted when
// absent; an empty filter string is not a valid Algolia expression.
type QueryParams struct {
	Query                string   `json:"query"`
	HitsPerPage          int      `json:"hitsPerPage"`
	Filters              string   `json:"filters,omitempty"`
	AttributesToRetrieve []string `json:"attributesToRetrieve,omitempty"`
}

// QueryResponse mirrors the index's response shape.
type QueryResponse struct {
	Hits             []domain.Product `json:"hits"`
	NbHits           int              `json:"nbHits"`
	Page             int              `json:"page"`
	ProcessingTimeMS int              `json:"processingTimeMS"`
}

// apiError is the error body the service returns on non-2xx responses.
type apiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Query executes a single search attempt against the index. Retrying is the
// caller's concern.
func (c *Client) Query(ctx context.Context, params QueryParams) (QueryResponse, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return QueryResponse{}, fmt.Errorf("marshal query: %w", err)
	}

	url := fmt.Sprintf("%s/1/indexes/%s/query", c.baseURL, c.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return QueryResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-Application-Id", c.appID)
	req.Header.Set("X-Algolia-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return QueryResponse{}, fmt.Errorf("query index %s: %w", c.index, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return QueryResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return QueryResponse{}, fmt.Errorf("index %s returned %d: %s", c.index, resp.StatusCode, apiErr.Message)
		}
		return QueryResponse{}, fmt.Errorf("index %s returned %d", c.index, resp.StatusCode)
	}

	var out QueryResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return QueryResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
