package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAISession(t *testing.T, handler http.HandlerFunc) *OpenAISession {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := NewOpenAISession(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)
	return s
}

func TestOpenAISession_KeepsHistory(t *testing.T) {
	var seen []int
	handler := func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []map[string]any `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		seen = append(seen, len(body.Messages))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": "Forests store carbon."},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16},
		})
	}

	s := newTestOpenAISession(t, handler)

	r, err := s.SendMessage(context.Background(), "Why do forests matter?")
	require.NoError(t, err)
	assert.Equal(t, "Forests store carbon.", r.Text)
	assert.Equal(t, 16, r.Usage.TotalTokens)

	_, err = s.SendMessage(context.Background(), "Tell me more")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, seen)
}

func TestOpenAISession_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Rate limit exceeded", "type": "rate_limit_error"},
		})
	}

	s := newTestOpenAISession(t, handler)
	_, err := s.SendMessage(context.Background(), "hi")

	var rl *ErrRateLimit
	assert.True(t, errors.As(err, &rl), "expected ErrRateLimit, got %T", err)
	assert.Empty(t, s.history)
}

func TestOpenAISession_MissingKey(t *testing.T) {
	_, err := NewOpenAISession(OpenAIConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
