package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "schema://quiz-question.json"

var questionSchemaDefinition = map[string]any{
	"type":     "object",
	"required": []string{"question", "options", "correct_answer"},
	"properties": map[string]any{
		"question": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"options": map[string]any{
			"type":     "array",
			"minItems": OptionsPerQuestion,
			"maxItems": OptionsPerQuestion,
			"items":    map[string]any{"type": "string"},
		},
		"correct_answer": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": OptionsPerQuestion - 1,
		},
	},
}

var (
	questionSchemaOnce sync.Once
	questionSchema     *jsonschema.Schema
	questionSchemaErr  error
)

func compiledQuestionSchema() (*jsonschema.Schema, error) {
	questionSchemaOnce.Do(func() {
		questionSchema, questionSchemaErr = compileSchema(questionSchemaURL, questionSchemaDefinition)
	})
	return questionSchema, questionSchemaErr
}

// compileSchema round-trips the definition through encoding/json so the
// compiler sees plain decoded values.
func compileSchema(url string, definition any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

// ValidateRecord reports whether a decoded record is a well-formed question.
func ValidateRecord(record any) error {
	schema, err := compiledQuestionSchema()
	if err != nil {
		return err
	}
	return schema.Validate(record)
}

// ValidQuestions keeps, in order, the records of c["questions"] that pass
// validation. present is false when the candidate has no "questions" key;
// a key holding something other than an array yields no questions.
func ValidQuestions(c Candidate) (valid []Question, present bool) {
	raw, present := c["questions"]
	if !present {
		return nil, false
	}
	records, _ := raw.([]any)

	valid = lo.FilterMap(records, func(record any, _ int) (Question, bool) {
		if err := ValidateRecord(record); err != nil {
			return Question{}, false
		}
		return toQuestion(record)
	})
	return valid, true
}

func toQuestion(record any) (Question, bool) {
	m, ok := record.(map[string]any)
	if !ok {
		return Question{}, false
	}
	text, _ := m["question"].(string)

	rawOptions, _ := m["options"].([]any)
	options := make([]string, 0, len(rawOptions))
	for _, o := range rawOptions {
		s, ok := o.(string)
		if !ok {
			return Question{}, false
		}
		options = append(options, s)
	}

	var answer int
	switch v := m["correct_answer"].(type) {
	case float64:
		answer = int(v)
	case int:
		answer = v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return Question{}, false
		}
		answer = int(n)
	default:
		return Question{}, false
	}

	return Question{Question: text, Options: options, CorrectAnswer: answer}, true
}
