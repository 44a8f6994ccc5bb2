package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	QuizSessionShared   = "shared"
	QuizSessionIsolated = "isolated"
)

type Settings struct {
	Port            string
	AllowedOrigins  []string
	QuizSessionMode string
	LLMTimeout      time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Port:            "5000",
		AllowedOrigins:  []string{"*"},
		QuizSessionMode: QuizSessionShared,
		LLMTimeout:      60 * time.Second,
	}
}

// LoadSettings reads the process environment on top of DefaultSettings.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	if p := os.Getenv("PORT"); p != "" {
		s.Port = p
	}
	if o := os.Getenv("CORS_ALLOWED_ORIGINS"); o != "" {
		s.AllowedOrigins = splitList(o)
	}
	if m := os.Getenv("QUIZ_SESSION_MODE"); m != "" {
		s.QuizSessionMode = strings.ToLower(strings.TrimSpace(m))
	}
	if t := os.Getenv("LLM_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return s, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", t, err)
		}
		s.LLMTimeout = d
	}

	return s, s.Validate()
}

func (s Settings) Validate() error {
	if s.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	switch s.QuizSessionMode {
	case QuizSessionShared, QuizSessionIsolated:
	default:
		return fmt.Errorf("unknown QUIZ_SESSION_MODE %q", s.QuizSessionMode)
	}
	if s.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
