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

func TestAnthropicProvider_Generate(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-3-haiku-20240307", req.Model)
		assert.Equal(t, generationMaxTokens, req.MaxTokens)
		assert.NotEmpty(t, req.System)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"content": [{"type": "text", "text": "{\"title\": \"Call dentist\"}"}]
		}`))
	}))
	defer srv.Close()

	provider := NewAnthropicProvider("test-key", "claude-3-haiku-20240307")
	provider.baseURL = srv.URL

	// Act
	reply, err := provider.Generate(context.Background(), "system prompt", "user prompt")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, `{"title": "Call dentist"}`, reply)
}

func TestAnthropicProvider_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantRetryable bool
	}{
		{"rate limit is transient", http.StatusTooManyRequests, true},
		{"overloaded is transient", http.StatusServiceUnavailable, true},
		{"unauthorized is permanent", http.StatusUnauthorized, false},
		{"bad request is permanent", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"type": "error", "error": {"type": "test_error", "message": "upstream says no"}}`))
			}))
			defer srv.Close()

			provider := NewAnthropicProvider("test-key", "claude-3-haiku-20240307")
			provider.baseURL = srv.URL

			// Act
			_, err := provider.Generate(context.Background(), "system", "user")

			// Assert
			require.Error(t, err)
			assert.Equal(t, tt.wantRetryable, isRetryable(err))
			assert.Contains(t, err.Error(), "upstream says no")
		})
	}
}

func TestAnthropicProvider_NoTextContent(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "msg_01", "type": "message", "content": []}`))
	}))
	defer srv.Close()

	provider := NewAnthropicProvider("test-key", "claude-3-haiku-20240307")
	provider.baseURL = srv.URL

	// Act
	_, err := provider.Generate(context.Background(), "system", "user")

	// Assert
	require.Error(t, err)
	assert.True(t, isRetryable(err))
}
