package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
)

var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// AnthropicSession replays its own history against the Messages API.
type AnthropicSession struct {
	mu        sync.Mutex
	id        string
	client    *anthropic.Client
	model     string
	maxTokens int64
	history   []anthropic.MessageParam
}

func NewAnthropicSession(cfg AnthropicConfig) (*AnthropicSession, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	return &AnthropicSession{
		id:        uuid.NewString(),
		client:    &client,
		model:     resolveModel(cfg.Model, anthropicModels),
		maxTokens: cfg.MaxTokens,
	}, nil
}

// SendMessage holds the lock only to read and extend the history.
func (s *AnthropicSession) SendMessage(ctx context.Context, text string) (*Reply, error) {
	user := anthropicText(anthropic.MessageParamRoleUser, text)
	messages := append(s.snapshot(), user)

	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		Messages:  messages,
	})
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	reply := &Reply{
		Text:  b.String(),
		Model: string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}
	if reply.Text != "" {
		s.commit(user, anthropicText(anthropic.MessageParamRoleAssistant, reply.Text))
	}
	return reply, nil
}

func (s *AnthropicSession) snapshot() []anthropic.MessageParam {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]anthropic.MessageParam, 0, len(s.history)+1), s.history...)
}

func (s *AnthropicSession) commit(turn ...anthropic.MessageParam) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turn...)
}

func (s *AnthropicSession) ID() string { return s.id }

func (s *AnthropicSession) Provider() string { return ProviderAnthropic }

func anthropicText(role anthropic.MessageParamRole, text string) anthropic.MessageParam {
	return anthropic.MessageParam{
		Role: role,
		Content: []anthropic.ContentBlockParamUnion{
			anthropic.NewTextBlock(text),
		},
	}
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Provider: ProviderAnthropic, Err: err}
	}
	return &ErrProviderUnavailable{Provider: ProviderAnthropic, Err: err}
}
