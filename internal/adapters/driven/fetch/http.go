// Package fetch provides the HTTP fetch collaborator: it asks a
// scraping provider's API for a raw listing payload. The core never
// sees any of this; it only receives the payload or the failure.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
)

// Default configuration values.
const (
	DefaultTimeout   = 60 * time.Second
	DefaultCacheSize = 128
)

// Ensure Client implements the interface.
var _ driven.ListingFetcher = (*Client)(nil)

// Config holds configuration for the provider API client.
type Config struct {
	// Endpoint is the scraping provider's API URL (required).
	Endpoint string

	// APIKey authenticates against the provider, if it requires one.
	APIKey string

	// Provider is the shape hint reported with every payload
	// (e.g. "flat", "grouped"). Optional.
	Provider string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// CacheSize is the number of payloads kept in the LRU cache
	// (default: 128). Re-submissions of the same URL within a run skip
	// the provider round trip.
	CacheSize int
}

// Client fetches raw provider payloads over HTTP with an LRU cache
// keyed by source URL.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	provider string
	cache    *lru.Cache[string, map[string]any]
}

// New creates a provider API client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("fetch: endpoint is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, map[string]any](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("fetch: creating cache: %w", err)
	}

	return &Client{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		provider: cfg.Provider,
		cache:    cache,
	}, nil
}

// WithTransport replaces the underlying HTTP transport. Useful for testing.
func (c *Client) WithTransport(rt http.RoundTripper) {
	c.client.Transport = rt
}

// Fetch obtains the raw payload for a listing URL.
func (c *Client) Fetch(ctx context.Context, sourceURL string) (*driven.FetchResult, error) {
	if payload, ok := c.cache.Get(sourceURL); ok {
		logger.Debug("fetch: cache hit for %s", sourceURL)
		return &driven.FetchResult{Payload: payload, Provider: c.provider}, nil
	}

	reqURL := fmt.Sprintf("%s?url=%s", c.endpoint, url.QueryEscape(sourceURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: provider returned %d: %s",
			domain.ErrFetchFailed, resp.StatusCode, string(body))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding provider response: %v", domain.ErrFetchFailed, err)
	}

	c.cache.Add(sourceURL, payload)
	return &driven.FetchResult{Payload: payload, Provider: c.provider}, nil
}
