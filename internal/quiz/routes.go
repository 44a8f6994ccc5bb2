package quiz

import (
	"github.com/go-chi/chi/v5"
)

// Routes registers one GET endpoint per topic. Paths are top-level, so the
// caller attaches them with r.Group rather than Mount.
func Routes(h *Handler) func(r chi.Router) {
	return func(r chi.Router) {
		for _, t := range Topics {
			r.Get(t.Path, h.TopicQuiz(t))
		}
	}
}
