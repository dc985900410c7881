// Package openai provides an AI commentary collaborator using an
// OpenAI-compatible chat completion API. Its output is advisory
// commentary only; the deterministic score never depends on it.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.CommentaryProvider = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the commentary client.
type Config struct {
	// APIKey is the API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for any compatible API.
	BaseURL string

	// Model is the model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// SystemPrompt overrides the built-in system prompt. Optional;
	// typically sourced from the prompt store so users can edit it.
	SystemPrompt string
}

// Client produces per-category commentary for a listing.
type Client struct {
	client       *http.Client
	baseURL      string
	apiKey       string
	model        string
	systemPrompt string
}

// chatCompletionRequest is the /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	Temperature float64             `json:"temperature"`
}

type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// New creates a commentary client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = defaultSystemPrompt
	}

	return &Client{
		client:       &http.Client{Timeout: cfg.Timeout},
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
	}, nil
}

// WithTransport replaces the underlying HTTP transport. Useful for testing.
func (c *Client) WithTransport(rt http.RoundTripper) {
	c.client.Transport = rt
}

// Commentary asks the model for per-category commentary on a listing.
// The returned mapping is provider-shaped and unvalidated; the
// enrichment merger decides per category what survives.
func (c *Client) Commentary(ctx context.Context, listing *domain.Listing) (map[string]any, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMsg{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: buildPrompt(listing)},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("openai: marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: reading response: %w", err)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("openai: decoding response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("openai: API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response")
	}

	content := stripCodeFence(parsed.Choices[0].Message.Content)
	var commentary map[string]any
	if err := json.Unmarshal([]byte(content), &commentary); err != nil {
		return nil, fmt.Errorf("openai: commentary is not a JSON object: %w", err)
	}
	return commentary, nil
}

const defaultSystemPrompt = `You are an Airbnb listing optimization consultant. ` +
	`Respond with a single JSON object whose keys are exactly: ` +
	`Title, Description, Photos, Amenities, Reviews, CancellationPolicy. ` +
	`Each value is an object with "summary" (one sentence) and ` +
	`"suggestions" (array of short, specific improvements).`

// buildPrompt summarises the listing fields the model should comment on.
func buildPrompt(l *domain.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", l.Title)
	fmt.Fprintf(&b, "Property type: %s\n", l.PropertyType)
	fmt.Fprintf(&b, "Location: %s\n", l.Location)
	fmt.Fprintf(&b, "Photos: %d\n", len(l.Photos))
	fmt.Fprintf(&b, "Amenities: %s\n", strings.Join(l.Amenities, ", "))
	fmt.Fprintf(&b, "Rating: %.2f over %d reviews (guest favorite: %t)\n",
		l.Reviews.OverallRating, l.Reviews.ReviewCount, l.Reviews.IsGuestFavorite)
	fmt.Fprintf(&b, "Cancellation policy: %s (strictness %d/5, instant book: %t)\n",
		l.CancellationPolicy.Name, l.CancellationPolicy.Strictness, l.CancellationPolicy.CanInstantBook)
	fmt.Fprintf(&b, "Description:\n%s\n", l.Description)
	return b.String()
}

// stripCodeFence unwraps ```json fenced responses some models insist on.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
