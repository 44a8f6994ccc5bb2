package llm

import "context"

// Session is a persistent conversational context held against a model
// provider. Every message sent through a Session becomes part of its
// history, so callers that share a Session also share that history.
type Session interface {
	// SendMessage appends text to the conversation and returns the model's
	// reply. An empty Reply.Text is a valid, non-error outcome.
	SendMessage(ctx context.Context, text string) (*Reply, error)

	// ID identifies the session in logs.
	ID() string

	// Provider names the backing provider ("gemini", "openai", ...).
	Provider() string
}

// Reply is the model's answer to a single message.
type Reply struct {
	Text  string
	Model string
	Usage Usage
}

// Usage tracks token consumption for a single message.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
