package chatbot

import (
	"time"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
)

type ChatbotContainer struct {
	Handler *Handler
	Service Service
}

func NewChatbotContainer(session llm.Session, timeout time.Duration) *ChatbotContainer {
	service := NewService(session, timeout)
	handler := NewHandler(service)

	return &ChatbotContainer{
		Handler: handler,
		Service: service,
	}
}
