package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
)

type internalError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Recoverer turns a panic into a JSON 500. It reports the panic through the
// request's log entry when RequestLogger is installed. A response whose
// status was already written is left as is.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			if entry := middleware.GetLogEntry(r); entry != nil {
				entry.Panic(rvr, debug.Stack())
			} else {
				config.WithContext(r.Context()).WithField("panic", fmt.Sprint(rvr)).Error("Request panicked")
			}

			if ww.Status() != 0 {
				return
			}
			config.JSON(ww, http.StatusInternalServerError, internalError{
				Error:   "Internal server error",
				Message: "Something went wrong. Please try again later.",
			})
		}()

		next.ServeHTTP(ww, r)
	})
}
