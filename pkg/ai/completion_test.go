package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

func TestComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		assert.Equal(t, "gpt-3.5-turbo", payload.Model)
		assert.Equal(t, 1000, payload.MaxTokens)
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, "system", payload.Messages[0].Role)
		assert.Equal(t, "be brief", payload.Messages[0].Content)
		assert.Equal(t, "user", payload.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  ## Summary\n* done  "}}]}`))
	}))
	defer ts.Close()

	client := NewCompletionClient(&config.AIConfig{APIKey: "test-key", BaseURL: ts.URL + "/"})

	out, err := client.Complete(context.Background(), "be brief", "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "## Summary\n* done", out)
}

func TestComplete_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer ts.Close()

	client := NewCompletionClient(&config.AIConfig{APIKey: "k", BaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "s", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewCompletionClient(&config.AIConfig{APIKey: "k", BaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "s", "p")
	assert.EqualError(t, err, "empty response from completion API")
}

func TestNewCompletionClient_Defaults(t *testing.T) {
	client := NewCompletionClient(nil)
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, defaultMaxTokens, client.maxTokens)
}
