package chatbot

import (
	"net/http"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Chat sends the message query parameter to the model.
//
// @Summary      Chat with the environmental assistant
// @Tags         chatbot
// @Produce      json
// @Param        message  query     string  true  "User message"
// @Success      200      {object}  chatbot.ChatResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /chatbot [get]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	message := r.URL.Query().Get("message")
	if message == "" {
		log.Warn("Chat request without message")
		config.Error(w, http.StatusBadRequest, "No message provided")
		return
	}

	text, err := h.service.Reply(r.Context(), message)
	if err != nil {
		log.WithError(err).Error("Chat request failed")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, ChatResponse{Response: text})
}
