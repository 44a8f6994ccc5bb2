package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
)

var (
	ErrEmptyModelResponse  = errors.New("model returned an empty response")
	ErrExtractionFailure   = errors.New("no quiz could be extracted from the model response")
	ErrValidationShortfall = errors.New("model returned fewer valid questions than required")
	ErrModelClient         = errors.New("model client error")
)

// Outcome names the branch a generation ended on.
type Outcome string

const (
	// OutcomeGenerated means the model supplied every question.
	OutcomeGenerated Outcome = "generated"
	// OutcomeAugmented means valid model questions were topped up from the bank.
	OutcomeAugmented Outcome = "augmented"
	// OutcomeFallback means the quiz came entirely from the bank.
	OutcomeFallback Outcome = "fallback"
)

type Result struct {
	Quiz    *Quiz
	Outcome Outcome
	// Cause is nil for OutcomeGenerated.
	Cause error
}

type Service interface {
	// Generate always returns a quiz; failures are logged and replaced with
	// bank content.
	Generate(ctx context.Context, topic string) *Quiz
	GenerateWithOutcome(ctx context.Context, topic string) *Result
}

type service struct {
	session llm.Session
	bank    *Bank
	timeout time.Duration
}

func NewService(session llm.Session, bank *Bank, timeout time.Duration) Service {
	return &service{session: session, bank: bank, timeout: timeout}
}

func (s *service) Generate(ctx context.Context, topic string) *Quiz {
	return s.GenerateWithOutcome(ctx, topic).Quiz
}

func (s *service) GenerateWithOutcome(ctx context.Context, topic string) *Result {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"topic":         topic,
		"generation_id": uuid.NewString(),
	})
	log.Info("Generating quiz")

	text, err := s.ask(ctx, BuildPrompt(topic))
	if err != nil {
		return s.fallback(log, topic, fmt.Errorf("%w: %w", ErrModelClient, err))
	}
	if text == "" {
		return s.fallback(log, topic, ErrEmptyModelResponse)
	}

	candidate, ok := Extract(text)
	if !ok {
		return s.fallback(log, topic, ErrExtractionFailure)
	}
	valid, present := ValidQuestions(candidate)
	if !present {
		return s.fallback(log, topic, ErrExtractionFailure)
	}

	if len(valid) >= QuestionsPerQuiz {
		log.WithField("valid_questions", len(valid)).Info("Quiz generated")
		return &Result{
			Quiz:    &Quiz{Questions: valid[:QuestionsPerQuiz]},
			Outcome: OutcomeGenerated,
		}
	}

	questions := s.pad(valid, topic)
	entry := log.WithError(ErrValidationShortfall).WithFields(logrus.Fields{
		"valid_questions":  len(valid),
		"padded_questions": len(questions) - len(valid),
	})
	if len(questions) < QuestionsPerQuiz {
		entry.Warn("Question bank too small to complete quiz")
	} else {
		entry.Warn("Quiz completed with bank questions")
	}

	return &Result{
		Quiz:    &Quiz{Questions: questions},
		Outcome: OutcomeAugmented,
		Cause:   ErrValidationShortfall,
	}
}

func (s *service) ask(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.session.SendMessage(ctx, prompt)
	if err != nil {
		return "", err
	}
	if reply == nil {
		return "", nil
	}
	return reply.Text, nil
}

// pad appends bank questions whose text is not already present until the
// quiz is full or the bank runs out.
func (s *service) pad(questions []Question, topic string) []Question {
	seen := make(map[string]struct{}, QuestionsPerQuiz)
	for _, q := range questions {
		seen[q.Question] = struct{}{}
	}

	for _, q := range s.bank.Sample(topic, s.bank.Size(topic)) {
		if len(questions) >= QuestionsPerQuiz {
			break
		}
		if _, dup := seen[q.Question]; dup {
			continue
		}
		seen[q.Question] = struct{}{}
		questions = append(questions, q)
	}
	return questions
}

func (s *service) fallback(log *logrus.Entry, topic string, cause error) *Result {
	questions := s.bank.Sample(topic, QuestionsPerQuiz)

	entry := log.WithError(cause).WithField("fallback_questions", len(questions))
	switch {
	case errors.Is(cause, ErrModelClient):
		entry.Error("Model call failed, serving fallback quiz")
	case len(questions) < QuestionsPerQuiz:
		entry.Warn("Serving short fallback quiz")
	default:
		entry.Warn("Serving fallback quiz")
	}

	return &Result{
		Quiz:    &Quiz{Questions: questions},
		Outcome: OutcomeFallback,
		Cause:   cause,
	}
}
