package chatbot

import (
	"context"
	"time"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
)

type Service interface {
	// Reply forwards message to the conversation and returns the model's
	// text. Client errors are returned unwrapped.
	Reply(ctx context.Context, message string) (string, error)
}

type service struct {
	session llm.Session
	timeout time.Duration
}

func NewService(session llm.Session, timeout time.Duration) Service {
	return &service{session: session, timeout: timeout}
}

func (s *service) Reply(ctx context.Context, message string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.session.SendMessage(ctx, message)
	if err != nil {
		return "", err
	}
	if reply == nil {
		return "", nil
	}

	config.WithContext(ctx).WithField("session_id", s.session.ID()).Debugf("Chat reply of %d chars", len(reply.Text))
	return reply.Text, nil
}
