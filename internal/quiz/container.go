package quiz

import (
	"time"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
)

type QuizContainer struct {
	Handler *Handler
	Service Service
	Bank    *Bank
}

func NewQuizContainer(session llm.Session, timeout time.Duration) *QuizContainer {
	bank := DefaultBank()
	service := NewService(session, bank, timeout)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Bank:    bank,
	}
}
