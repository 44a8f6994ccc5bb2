package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Factory opens a new Session.
type Factory func(ctx context.Context) (Session, error)

// EphemeralSession opens a fresh Session for every message, so no history
// is carried between callers.
type EphemeralSession struct {
	id       string
	provider string
	open     Factory
}

func Ephemeral(provider string, open Factory) *EphemeralSession {
	return &EphemeralSession{id: uuid.NewString(), provider: provider, open: open}
}

func (e *EphemeralSession) SendMessage(ctx context.Context, text string) (*Reply, error) {
	s, err := e.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s session: %w", e.provider, err)
	}
	return s.SendMessage(ctx, text)
}

func (e *EphemeralSession) ID() string { return e.id }

func (e *EphemeralSession) Provider() string { return e.provider }
