package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/quiz"
)

func record(question string, options []any, answer any) map[string]any {
	return map[string]any{"question": question, "options": options, "correct_answer": answer}
}

func TestValidQuestions(t *testing.T) {
	four := []any{"a", "b", "c", "d"}

	t.Run("FiltersAndPreservesOrder", func(t *testing.T) {
		c := quiz.Candidate{"questions": []any{
			record("first", four, float64(0)),
			record("three options", []any{"a", "b", "c"}, float64(0)),
			record("answer out of range", four, float64(4)),
			record("answer as string", four, "1"),
			map[string]any{"options": four, "correct_answer": float64(1)},
			"not an object",
			record("second", four, float64(3)),
		}}

		valid, present := quiz.ValidQuestions(c)
		require.True(t, present)
		require.Len(t, valid, 2)
		assert.Equal(t, quiz.Question{Question: "first", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0}, valid[0])
		assert.Equal(t, "second", valid[1].Question)
		assert.Equal(t, 3, valid[1].CorrectAnswer)
	})

	t.Run("QuestionsNotAnArray", func(t *testing.T) {
		valid, present := quiz.ValidQuestions(quiz.Candidate{"questions": "five of them"})
		assert.True(t, present)
		assert.Empty(t, valid)
	})

	t.Run("MissingQuestionsKey", func(t *testing.T) {
		valid, present := quiz.ValidQuestions(quiz.Candidate{"question": "x"})
		assert.False(t, present)
		assert.Nil(t, valid)
	})
}

func TestValidateRecord(t *testing.T) {
	assert.NoError(t, quiz.ValidateRecord(record("ok", []any{"a", "b", "c", "d"}, float64(2))))
	assert.Error(t, quiz.ValidateRecord(record("", []any{"a", "b", "c", "d"}, float64(2))))
	assert.Error(t, quiz.ValidateRecord(record("ok", []any{"a", "b", "c", float64(4)}, float64(2))))
	assert.Error(t, quiz.ValidateRecord(record("ok", []any{"a", "b", "c", "d"}, 1.5)))
	assert.Error(t, quiz.ValidateRecord(record("ok", []any{"a", "b", "c", "d"}, float64(-1))))
}
