package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
)

// LoggingSession records every message exchange through logrus.
type LoggingSession struct {
	inner Session
}

func WithLogging(s Session) Session {
	return &LoggingSession{inner: s}
}

func (l *LoggingSession) SendMessage(ctx context.Context, text string) (*Reply, error) {
	start := time.Now()
	reply, err := l.inner.SendMessage(ctx, text)

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"provider":     l.inner.Provider(),
		"session_id":   l.inner.ID(),
		"latency_ms":   time.Since(start).Milliseconds(),
		"prompt_chars": len(text),
	})
	if err != nil {
		log.WithError(err).Warn("model request failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"model":         reply.Model,
		"reply_chars":   len(reply.Text),
		"input_tokens":  reply.Usage.InputTokens,
		"output_tokens": reply.Usage.OutputTokens,
	}).Debug("model request completed")
	return reply, nil
}

func (l *LoggingSession) ID() string { return l.inner.ID() }

func (l *LoggingSession) Provider() string { return l.inner.Provider() }
