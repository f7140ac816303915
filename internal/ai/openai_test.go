package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:11434", "http://localhost:11434/v1"},
		{"http://localhost:11434/", "http://localhost:11434/v1"},
		{"http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"http://localhost:11434/v1/", "http://localhost:11434/v1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeBaseURL(tt.in))
	}
}

func TestOllamaProvider_Generate(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama2", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "{\"title\": \"Buy milk\", \"priority\": 0}"},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "llama2")

	// Act
	reply, err := provider.Generate(context.Background(), "system prompt", "user prompt")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, `{"title": "Buy milk", "priority": 0}`, reply)
}

func TestOllamaProvider_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantRetryable bool
	}{
		{"rate limit is transient", http.StatusTooManyRequests, true},
		{"server error is transient", http.StatusInternalServerError, true},
		{"bad gateway is transient", http.StatusBadGateway, true},
		{"unauthorized is permanent", http.StatusUnauthorized, false},
		{"forbidden is permanent", http.StatusForbidden, false},
		{"bad request is permanent", http.StatusBadRequest, false},
		{"missing model is permanent", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error": {"message": "upstream says no", "type": "test_error"}}`))
			}))
			defer srv.Close()

			provider := NewOllamaProvider(srv.URL, "llama2")

			// Act
			_, err := provider.Generate(context.Background(), "system", "user")

			// Assert
			require.Error(t, err)
			assert.Equal(t, tt.wantRetryable, isRetryable(err))
		})
	}
}

func TestOllamaProvider_NetworkFailureIsTransient(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	provider := NewOllamaProvider(srv.URL, "llama2")

	// Act
	_, err := provider.Generate(context.Background(), "system", "user")

	// Assert
	require.Error(t, err)
	assert.True(t, isRetryable(err))
}

func TestOllamaProvider_EmptyChoicesIsTransient(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "llama2")

	// Act
	_, err := provider.Generate(context.Background(), "system", "user")

	// Assert
	require.Error(t, err)
	assert.True(t, isRetryable(err))
}
