package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAISession emulates a chat session on top of the stateless chat
// completions API by replaying the accumulated history on every call.
// Concurrent exchanges interleave in the shared history.
type OpenAISession struct {
	mu        sync.Mutex
	id        string
	client    *openai.Client
	model     string
	maxTokens int
	history   []openai.ChatCompletionMessage
}

func NewOpenAISession(cfg OpenAIConfig) (*OpenAISession, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAISession{
		id:        uuid.NewString(),
		client:    openai.NewClientWithConfig(config),
		model:     resolveModel(cfg.Model, openaiModels),
		maxTokens: cfg.MaxTokens,
	}, nil
}

// SendMessage holds the lock only to read and extend the history, so
// concurrent callers do not wait on each other's round-trips.
func (s *OpenAISession) SendMessage(ctx context.Context, text string) (*Reply, error) {
	user := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	}
	messages := append(s.snapshot(), user)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               s.model,
		Messages:            messages,
		MaxCompletionTokens: s.maxTokens,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	reply := &Reply{
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return reply, nil
	}

	reply.Text = resp.Choices[0].Message.Content
	s.commit(user, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply.Text,
	})
	return reply, nil
}

func (s *OpenAISession) snapshot() []openai.ChatCompletionMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]openai.ChatCompletionMessage, 0, len(s.history)+1), s.history...)
}

func (s *OpenAISession) commit(turn ...openai.ChatCompletionMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turn...)
}

func (s *OpenAISession) ID() string { return s.id }

func (s *OpenAISession) Provider() string { return ProviderOpenAI }

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Provider: ProviderOpenAI, Err: err}
	}
	return &ErrProviderUnavailable{Provider: ProviderOpenAI, Err: err}
}
