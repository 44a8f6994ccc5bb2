package quiz

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// TopicQuiz serves a freshly generated quiz for topic.
//
// @Summary      Generate a topic quiz
// @Description  Returns five multiple-choice questions. Model failures are served from the curated bank.
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  quiz.Quiz
// @Failure      500  {object}  map[string]string
// @Router       /deforestation [get]
// @Router       /climate [get]
// @Router       /Social [get]
// @Router       /EWE [get]
// @Router       /bio_loss [get]
// @Router       /air [get]
// @Router       /EcoEffect [get]
func (h *Handler) TopicQuiz(topic Topic) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := h.service.GenerateWithOutcome(r.Context(), topic.Name)

		config.WithContext(r.Context()).WithFields(logrus.Fields{
			"topic":     topic.Name,
			"outcome":   result.Outcome,
			"questions": len(result.Quiz.Questions),
		}).Info("Quiz served")

		config.JSON(w, http.StatusOK, result.Quiz)
	}
}
