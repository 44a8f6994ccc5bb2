package quiz

import "fmt"

const quizPromptTemplate = `Generate a quiz about %s with %d multiple-choice questions.
Return ONLY a valid JSON object with this structure:
{
    "questions": [
        {
            "question": "Question text here?",
            "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
            "correct_answer": 0
        }
    ]
}`

func BuildPrompt(topic string) string {
	return fmt.Sprintf(quizPromptTemplate, topic, QuestionsPerQuiz)
}
