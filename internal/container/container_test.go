package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/container"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
)

func TestNew(t *testing.T) {
	t.Run("MockProvider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "mock")
		t.Setenv("QUIZ_SESSION_MODE", "")

		c, err := container.New(context.Background())
		require.NoError(t, err)

		assert.Equal(t, llm.ProviderMock, c.Session.Provider())
		assert.Equal(t, config.QuizSessionShared, c.Settings.QuizSessionMode)

		rec := httptest.NewRecorder()
		c.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/EcoEffect", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("IsolatedQuizSessions", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "mock")
		t.Setenv("QUIZ_SESSION_MODE", "isolated")

		c, err := container.New(context.Background())
		require.NoError(t, err)
		assert.Equal(t, config.QuizSessionIsolated, c.Settings.QuizSessionMode)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "mock")
		t.Setenv("LLM_TIMEOUT", "soon")

		_, err := container.New(context.Background())
		assert.ErrorContains(t, err, "LLM_TIMEOUT")
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "openai")
		t.Setenv("OPENAI_API_KEY", "")

		_, err := container.New(context.Background())
		assert.Error(t, err)
	})
}

func TestNewWithSessions(t *testing.T) {
	shared := llm.NewMockSession(llm.MockReply{Text: "chat reply"})
	quizOnly := llm.NewMockSession()

	c := container.NewWithSessions(config.DefaultSettings(), shared, quizOnly)
	h := c.Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/air", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chatbot?message=hello", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"chat reply"}`, rec.Body.String())

	assert.Equal(t, 1, quizOnly.CallCount())
	assert.Equal(t, []string{"hello"}, shared.Calls)
}
