package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

const testBaseURL = "https://llm.example.com/v1"

func newMockedClient(t *testing.T, cfg Config) (*Client, *httpmock.MockTransport) {
	t.Helper()
	if cfg.APIKey == "" {
		cfg.APIKey = "test-key"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = testBaseURL
	}
	client, err := New(cfg)
	require.NoError(t, err)

	transport := httpmock.NewMockTransport()
	client.WithTransport(transport)
	return client, transport
}

func chatResponder(content string) httpmock.Responder {
	body := map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"content": content}},
		},
	}
	return httpmock.NewJsonResponderOrPanic(200, body)
}

func sampleListing() *domain.Listing {
	l := domain.NewListing("https://www.airbnb.com/rooms/1")
	l.Title = "Entire rental unit in Lisbon"
	l.Description = "Bright apartment near the river."
	l.Amenities = []string{"Wifi", "Kitchen"}
	return l
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_AppliesDefaults(t *testing.T) {
	client, err := New(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultModel, client.model)
	assert.Equal(t, defaultSystemPrompt, client.systemPrompt)
}

func TestCommentary_ParsesJSONObject(t *testing.T) {
	client, transport := newMockedClient(t, Config{})
	transport.RegisterResponder("POST", testBaseURL+"/chat/completions",
		chatResponder(`{"Title": {"summary": "Clear and specific."}}`))

	got, err := client.Commentary(context.Background(), sampleListing())

	require.NoError(t, err)
	title, ok := got["Title"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Clear and specific.", title["summary"])
}

func TestCommentary_StripsCodeFence(t *testing.T) {
	client, transport := newMockedClient(t, Config{})
	transport.RegisterResponder("POST", testBaseURL+"/chat/completions",
		chatResponder("```json\n{\"Photos\": {\"summary\": \"Add daylight shots.\"}}\n```"))

	got, err := client.Commentary(context.Background(), sampleListing())

	require.NoError(t, err)
	assert.Contains(t, got, "Photos")
}

func TestCommentary_SendsAuthModelAndPrompts(t *testing.T) {
	client, transport := newMockedClient(t, Config{
		Model:        "llama3",
		SystemPrompt: "Custom system prompt.",
	})

	transport.RegisterResponder("POST", testBaseURL+"/chat/completions",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			var sent chatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &sent))

			assert.Equal(t, "llama3", sent.Model)
			require.Len(t, sent.Messages, 2)
			assert.Equal(t, "system", sent.Messages[0].Role)
			assert.Equal(t, "Custom system prompt.", sent.Messages[0].Content)
			assert.Contains(t, sent.Messages[1].Content, "Entire rental unit in Lisbon")

			return httpmock.NewJsonResponse(200, map[string]any{
				"choices": []any{
					map[string]any{"message": map[string]any{"content": "{}"}},
				},
			})
		})

	_, err := client.Commentary(context.Background(), sampleListing())
	require.NoError(t, err)
}

func TestCommentary_APIError(t *testing.T) {
	client, transport := newMockedClient(t, Config{})
	transport.RegisterResponder("POST", testBaseURL+"/chat/completions",
		httpmock.NewStringResponder(200, `{"error": {"message": "rate limited", "type": "rate_limit"}}`))

	_, err := client.Commentary(context.Background(), sampleListing())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCommentary_EmptyChoices(t *testing.T) {
	client, transport := newMockedClient(t, Config{})
	transport.RegisterResponder("POST", testBaseURL+"/chat/completions",
		httpmock.NewStringResponder(200, `{"choices": []}`))

	_, err := client.Commentary(context.Background(), sampleListing())
	assert.Error(t, err)
}

func TestCommentary_NonJSONContent(t *testing.T) {
	client, transport := newMockedClient(t, Config{})
	transport.RegisterResponder("POST", testBaseURL+"/chat/completions",
		chatResponder("Sorry, I cannot help with that."))

	_, err := client.Commentary(context.Background(), sampleListing())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a JSON object")
}
