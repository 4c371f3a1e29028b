package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgomeslima/aibarber-sub001/internal/config"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		OpenAIBaseURL:    baseURL,
		OpenAIAPIKey:     "test-key",
		OpenAIModel:      "test-model",
		AssistantTimeout: 5,
	})
}

func TestClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.NotEmpty(t, req.Messages)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Olá!"}},
			},
			"usage": map[string]any{
				"prompt_tokens":     12,
				"completion_tokens": 3,
				"total_tokens":      15,
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	reply, err := client.Complete(context.Background(), []ChatMessage{
		{Role: RoleUser, Content: "Oi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Olá!", reply.Text)
	assert.Equal(t, 15, reply.Usage.TotalTokens)
}

func TestClientCompleteWithoutKey(t *testing.T) {
	client := NewClient(&config.Config{OpenAIBaseURL: "http://unused"})

	_, err := client.Complete(context.Background(), []ChatMessage{
		{Role: RoleUser, Content: "Oi"},
	})
	assert.True(t, httperr.IsBusiness(err, "assistant_not_configured"))
}

func TestClientCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Complete(context.Background(), []ChatMessage{
		{Role: RoleUser, Content: "Oi"},
	})
	assert.True(t, httperr.IsBusiness(err, "assistant_unavailable"))
}

func TestClientCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Complete(context.Background(), []ChatMessage{
		{Role: RoleUser, Content: "Oi"},
	})
	assert.True(t, httperr.IsBusiness(err, "assistant_unavailable"))
}
