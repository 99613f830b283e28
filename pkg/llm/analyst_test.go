package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/config"
)

// mockLLMServer fakes an OpenAI-compatible chat completions endpoint
func mockLLMServer(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["messages"])

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": reply}}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Provider:    "openai",
		APIKey:      "test-key",
		Endpoint:    endpoint,
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   100,
	}
}

func TestAnalyst_Summarize(t *testing.T) {
	reply := "## Background\ncontext\n## Overview\nwhat it is\n## Mechanism\nhow\n## Market Impact\nwho cares\n## Outlook\nnext"
	server := mockLLMServer(t, reply, http.StatusOK)
	defer server.Close()

	analyst, err := NewAnalyst(testConfig(server.URL))
	require.NoError(t, err)

	got, err := analyst.Summarize(context.Background(), "article text")
	require.NoError(t, err)
	assert.Contains(t, got, "## Background")
	assert.Contains(t, got, "## Outlook")
}

func TestAnalyst_OutlineAndInsights(t *testing.T) {
	server := mockLLMServer(t, "## Insights\n- one\n## Open Questions\n- why", http.StatusOK)
	defer server.Close()

	analyst, err := NewAnalyst(testConfig(server.URL))
	require.NoError(t, err)

	got, err := analyst.Outline(context.Background(), "article text")
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	got, err = analyst.Insights(context.Background(), "article text")
	require.NoError(t, err)
	assert.Contains(t, got, "## Open Questions")
}

func TestAnalyst_ProviderError(t *testing.T) {
	server := mockLLMServer(t, "", http.StatusTooManyRequests)
	defer server.Close()

	analyst, err := NewAnalyst(testConfig(server.URL))
	require.NoError(t, err)

	_, err = analyst.Summarize(context.Background(), "article text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request failed")
}

func TestAnalyst_EmptyResponse(t *testing.T) {
	server := mockLLMServer(t, "   ", http.StatusOK)
	defer server.Close()

	analyst, err := NewAnalyst(testConfig(server.URL))
	require.NoError(t, err)

	_, err = analyst.Insights(context.Background(), "article text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestNewAnalyst_Providers(t *testing.T) {
	t.Run("openai default model", func(t *testing.T) {
		a, err := NewAnalyst(config.LLMConfig{Provider: "openai", APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", a.model)
	})

	t.Run("deepseek default model", func(t *testing.T) {
		a, err := NewAnalyst(config.LLMConfig{Provider: "deepseek", APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "deepseek-chat", a.model)
	})

	t.Run("explicit model wins", func(t *testing.T) {
		a, err := NewAnalyst(config.LLMConfig{Provider: "deepseek", APIKey: "k", Model: "deepseek-reasoner"})
		require.NoError(t, err)
		assert.Equal(t, "deepseek-reasoner", a.model)
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		_, err := NewAnalyst(config.LLMConfig{Provider: "gemini", APIKey: "k"})
		assert.Error(t, err)
	})
}
