package quiz

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// Candidate is a decoded JSON object that may or may not hold a quiz.
type Candidate map[string]any

type strategy func(text string) (Candidate, bool)

var strategies = []strategy{
	fromFencedBlocks,
	fromBareObjects,
	fromFieldPatterns,
}

var (
	fencedObject  = regexp.MustCompile("```(?:json)?\\s*(\\{[\\s\\S]*?\\})\\s*```")
	bareObject    = regexp.MustCompile(`\{[\s\S]*?\}`)
	questionField = regexp.MustCompile(`["']question["']\s*:\s*["']([^"']+)["']`)
	optionsField  = regexp.MustCompile(`["']options["']\s*:\s*\[(.*?)\]`)
	answerField   = regexp.MustCompile(`["']correct_answer["']\s*:\s*(\d+)`)
	quotedString  = regexp.MustCompile(`["']([^"']+)["']`)
)

// Extract recovers a JSON object from free-form model output. Strategies
// run in order and the first one that yields an object wins.
func Extract(text string) (Candidate, bool) {
	for _, s := range strategies {
		if c, ok := s(text); ok {
			return c, true
		}
	}
	return nil, false
}

func fromFencedBlocks(text string) (Candidate, bool) {
	for _, m := range fencedObject.FindAllStringSubmatch(text, -1) {
		if c, ok := decodeObject(m[1]); ok {
			return c, true
		}
	}
	return nil, false
}

// fromBareObjects is non-greedy, so nested objects only decode when the
// innermost span happens to be complete on its own.
func fromBareObjects(text string) (Candidate, bool) {
	for _, m := range bareObject.FindAllString(text, -1) {
		if c, ok := decodeObject(m); ok {
			return c, true
		}
	}
	return nil, false
}

// fromFieldPatterns rebuilds questions from loose key/value fragments. The
// three field streams are paired by position.
func fromFieldPatterns(text string) (Candidate, bool) {
	questions := questionField.FindAllStringSubmatch(text, -1)
	options := optionsField.FindAllStringSubmatch(text, -1)
	answers := answerField.FindAllStringSubmatch(text, -1)

	n := min(len(questions), len(options), len(answers))
	records := make([]any, 0, n)
	for i := 0; i < n; i++ {
		opts := quotedString.FindAllStringSubmatch(options[i][1], -1)
		if len(opts) != OptionsPerQuestion {
			continue
		}
		answer, err := strconv.Atoi(answers[i][1])
		if err != nil {
			continue
		}

		values := make([]any, len(opts))
		for j, o := range opts {
			values[j] = o[1]
		}
		records = append(records, map[string]any{
			"question":       questions[i][1],
			"options":        values,
			"correct_answer": float64(answer),
		})
	}

	if len(records) == 0 {
		return nil, false
	}
	return Candidate{"questions": records}, true
}

func decodeObject(s string) (Candidate, bool) {
	var c map[string]any
	if err := json.Unmarshal([]byte(s), &c); err != nil || c == nil {
		return nil, false
	}
	return Candidate(c), true
}
