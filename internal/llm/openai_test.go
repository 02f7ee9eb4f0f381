package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "openai", config: Config{Provider: "openai", APIKey: "test-key"}},
		{name: "openai without key", config: Config{Provider: "openai"}, wantErr: true},
		{name: "ollama needs no key", config: Config{Provider: "Ollama"}},
		{name: "unknown provider", config: Config{Provider: "other"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"category\": \"Food\"}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{Provider: "openai", APIKey: "test-key", Model: "test-model", BaseURL: server.URL + "/"})
	require.NoError(t, err)

	reply, err := client.Complete(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, `{"category": "Food"}`, reply)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system text", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "user text", got.Messages[1].Content)
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
		rateLimit bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, retryable: true, rateLimit: true},
		{name: "server error", status: http.StatusBadGateway, retryable: true},
		{name: "unauthorized", status: http.StatusUnauthorized, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": {"message": "nope", "type": "test_error"}}`))
			}))
			defer server.Close()

			client, err := NewClient(Config{Provider: "ollama", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), "s", "p")
			require.Error(t, err)
			assert.Equal(t, tt.retryable, common.IsRetryable(err))
			assert.Equal(t, tt.rateLimit, errors.Is(err, common.ErrRateLimit))
		})
	}
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{Provider: "ollama", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response")
}
