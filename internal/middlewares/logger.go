package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
)

// RequestLogger logs one structured line per request through logrus.
func RequestLogger(next http.Handler) http.Handler {
	return middleware.RequestLogger(&logrusFormatter{})(next)
}

type logrusFormatter struct{}

func (f *logrusFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logrusEntry{
		entry: config.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"remote_addr": r.RemoteAddr,
		}),
	}
}

type logrusEntry struct {
	entry *logrus.Entry
}

func (e *logrusEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.entry.WithFields(logrus.Fields{
		"status":     status,
		"bytes":      bytes,
		"latency_ms": elapsed.Milliseconds(),
	}).Info("Request completed")
}

func (e *logrusEntry) Panic(v interface{}, stack []byte) {
	e.entry.WithFields(logrus.Fields{
		"panic": v,
		"stack": string(stack),
	}).Error("Request panicked")
}
