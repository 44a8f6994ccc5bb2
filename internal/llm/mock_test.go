package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSession_ReturnsCannedReplies(t *testing.T) {
	mock := NewMockSession(MockReply{Text: "first"}, MockReply{Text: "second"})

	r1, err := mock.SendMessage(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "first", r1.Text)

	r2, err := mock.SendMessage(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "second", r2.Text)

	assert.Equal(t, []string{"a", "b"}, mock.Calls)
	assert.Equal(t, 2, mock.CallCount())
}

func TestMockSession_EmptyQueueReturnsError(t *testing.T) {
	_, err := NewMockSession().SendMessage(context.Background(), "hi")

	var unavail *ErrProviderUnavailable
	require.True(t, errors.As(err, &unavail), "expected ErrProviderUnavailable, got %T", err)
	assert.Equal(t, ProviderMock, unavail.Provider)
}

func TestMockSession_ReplyError(t *testing.T) {
	boom := errors.New("quota exceeded")
	mock := NewMockSession(MockReply{Err: boom})
	mock.AddReply(MockReply{Text: "recovered"})

	_, err := mock.SendMessage(context.Background(), "x")
	assert.ErrorIs(t, err, boom)

	r, err := mock.SendMessage(context.Background(), "y")
	require.NoError(t, err)
	assert.Equal(t, "recovered", r.Text)
}

func TestWithLogging_PassesThrough(t *testing.T) {
	mock := NewMockSession(MockReply{Text: "ok"}, MockReply{Err: errors.New("down")})
	s := WithLogging(mock)

	assert.Equal(t, mock.ID(), s.ID())
	assert.Equal(t, ProviderMock, s.Provider())

	r, err := s.SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok", r.Text)

	_, err = s.SendMessage(context.Background(), "again")
	assert.EqualError(t, err, "down")
}

func TestEphemeral_OpensSessionPerMessage(t *testing.T) {
	var opened []*MockSession
	e := Ephemeral(ProviderMock, func(ctx context.Context) (Session, error) {
		m := NewMockSession(MockReply{Text: "fresh"})
		opened = append(opened, m)
		return m, nil
	})

	for i := 0; i < 3; i++ {
		r, err := e.SendMessage(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, "fresh", r.Text)
	}

	require.Len(t, opened, 3)
	for _, m := range opened {
		assert.Equal(t, 1, m.CallCount())
	}
}

func TestEphemeral_FactoryError(t *testing.T) {
	e := Ephemeral(ProviderGemini, func(ctx context.Context) (Session, error) {
		return nil, ErrMissingAPIKey
	})

	_, err := e.SendMessage(context.Background(), "q")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
