package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/chatbot"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/middlewares"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/quiz"

	_ "github.com/saulo-duarte/ecoquiz-lambda/docs"
)

type RouterConfig struct {
	QuizHandler    *quiz.Handler
	ChatbotHandler *chatbot.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", health)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(quiz.Routes(cfg.QuizHandler))
	r.Group(chatbot.Routes(cfg.ChatbotHandler))

	return r
}

// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
