package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiSession keeps the conversation history itself and replays it on
// every GenerateContent call. Concurrent exchanges interleave in the shared
// history.
type GeminiSession struct {
	mu      sync.Mutex
	id      string
	model   string
	client  *genai.Client
	config  *genai.GenerateContentConfig
	history []*genai.Content
}

func NewGeminiSession(ctx context.Context, cfg GeminiConfig) (*GeminiSession, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiSession{
		id:     uuid.NewString(),
		model:  resolveModel(cfg.Model, geminiModels),
		client: client,
		config: geminiGenerationConfig(cfg),
	}, nil
}

// SendMessage holds the lock only to read and extend the history.
func (s *GeminiSession) SendMessage(ctx context.Context, text string) (*Reply, error) {
	user := genai.NewContentFromText(text, genai.RoleUser)
	contents := append(s.snapshot(), user)

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, s.config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	reply := &Reply{
		Text:  result.Text(),
		Model: s.model,
	}
	if result.UsageMetadata != nil {
		reply.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}
	if reply.Text != "" {
		s.commit(user, genai.NewContentFromText(reply.Text, genai.RoleModel))
	}
	return reply, nil
}

func (s *GeminiSession) snapshot() []*genai.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]*genai.Content, 0, len(s.history)+1), s.history...)
}

func (s *GeminiSession) commit(turn ...*genai.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turn...)
}

func (s *GeminiSession) ID() string { return s.id }

func (s *GeminiSession) Provider() string { return ProviderGemini }

func geminiGenerationConfig(cfg GeminiConfig) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		MaxOutputTokens:  cfg.MaxOutputTokens,
		ResponseMIMEType: cfg.ResponseMIME,
	}
	if cfg.Temperature > 0 {
		temp := cfg.Temperature
		gc.Temperature = &temp
	}
	if cfg.TopP > 0 {
		topP := cfg.TopP
		gc.TopP = &topP
	}
	if cfg.TopK > 0 {
		topK := cfg.TopK
		gc.TopK = &topK
	}
	return gc
}

func mapGeminiError(err error) error {
	if geminiStatus(err) == http.StatusTooManyRequests {
		return &ErrRateLimit{Provider: ProviderGemini, Err: err}
	}
	return &ErrProviderUnavailable{Provider: ProviderGemini, Err: err}
}

// geminiStatus returns the HTTP status carried by a genai.APIError, which
// the SDK returns by value.
func geminiStatus(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code
	}
	return 0
}
