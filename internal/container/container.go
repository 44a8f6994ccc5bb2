package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/chatbot"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/quiz"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/router"
)

type Container struct {
	Settings         config.Settings
	Session          llm.Session
	QuizContainer    *quiz.QuizContainer
	ChatbotContainer *chatbot.ChatbotContainer
}

// New builds the process-wide object graph from the environment. The chat
// session is opened once here and lives as long as the process.
func New(ctx context.Context) (*Container, error) {
	config.Init()

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}

	session, err := llm.NewSession(ctx, llmCfg)
	if err != nil {
		return nil, err
	}

	quizSession := session
	if settings.QuizSessionMode == config.QuizSessionIsolated {
		quizSession = llm.Ephemeral(llmCfg.Provider, llm.NewFactory(llmCfg))
	}

	config.Logger.WithFields(logrus.Fields{
		"provider":          session.Provider(),
		"session_id":        session.ID(),
		"quiz_session_mode": settings.QuizSessionMode,
	}).Info("Chat session ready")

	return NewWithSessions(settings, session, quizSession), nil
}

// NewWithSessions wires the feature containers around already opened
// sessions. The chatbot always uses session; quizzes use quizSession.
func NewWithSessions(settings config.Settings, session, quizSession llm.Session) *Container {
	return &Container{
		Settings:         settings,
		Session:          session,
		QuizContainer:    quiz.NewQuizContainer(quizSession, settings.LLMTimeout),
		ChatbotContainer: chatbot.NewChatbotContainer(session, settings.LLMTimeout),
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		QuizHandler:    c.QuizContainer.Handler,
		ChatbotHandler: c.ChatbotContainer.Handler,
		AllowedOrigins: c.Settings.AllowedOrigins,
	})
}
