package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/chatbot"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/llm"
)

func TestRunChat(t *testing.T) {
	t.Run("ExitEndsConversation", func(t *testing.T) {
		session := llm.NewMockSession(
			llm.MockReply{Text: "Forests store carbon."},
			llm.MockReply{Err: errors.New("quota exceeded")},
		)
		svc := chatbot.NewService(session, time.Second)
		in := strings.NewReader("why forests?\n\nand oceans?\nEXIT\nnever sent\n")
		var out bytes.Buffer

		require.NoError(t, runChat(context.Background(), svc, in, &out))

		assert.Equal(t, []string{"why forests?", "and oceans?"}, session.Calls)
		assert.Contains(t, out.String(), "Chatbot: Forests store carbon.")
		assert.Contains(t, out.String(), "An error occurred: quota exceeded")
		assert.True(t, strings.HasSuffix(out.String(), "Chatbot: Goodbye!\n"))
	})

	t.Run("EOFEndsConversation", func(t *testing.T) {
		svc := chatbot.NewService(llm.NewMockSession(), time.Second)
		var out bytes.Buffer

		require.NoError(t, runChat(context.Background(), svc, strings.NewReader(""), &out))
		assert.Contains(t, out.String(), "Type 'exit'")
	})
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, loadEnvFile(""))
	assert.NoError(t, loadEnvFile(t.TempDir()+"/missing.env"))
}
