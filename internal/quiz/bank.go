package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var bankYAML []byte

var (
	errEmptyTopicName    = errors.New("bank topic name must not be empty")
	errEmptyQuestionText = errors.New("question text is empty")
)

// DefaultTopic is the bank served for topics with no curated set.
const DefaultTopic = "default"

// Bank is an immutable set of curated questions keyed by topic.
type Bank struct {
	topics map[string][]Question
}

type bankDocument struct {
	Topics map[string][]Question `yaml:"topics"`
}

// LoadBank parses a YAML bank document. Every record is checked against the
// same rules applied to generated questions.
func LoadBank(data []byte) (*Bank, error) {
	var doc bankDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	topics := make(map[string][]Question, len(doc.Topics))
	for name, questions := range doc.Topics {
		key := normalizeTopic(name)
		if key == "" {
			return nil, errEmptyTopicName
		}
		if _, dup := topics[key]; dup {
			return nil, fmt.Errorf("bank topic %q is defined more than once", key)
		}
		for i, q := range questions {
			if err := checkQuestion(q); err != nil {
				return nil, fmt.Errorf("bank topic %q question %d: %w", key, i, err)
			}
		}
		topics[key] = questions
	}

	return &Bank{topics: topics}, nil
}

var (
	defaultBankOnce sync.Once
	defaultBank     *Bank
)

// DefaultBank returns the bank embedded in the binary. It panics if the
// embedded document is malformed.
func DefaultBank() *Bank {
	defaultBankOnce.Do(func() {
		b, err := LoadBank(bankYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded question bank: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// Sample draws up to count questions for topic uniformly at random without
// replacement. Fewer are returned when the bank is smaller than count.
func (b *Bank) Sample(topic string, count int) []Question {
	if count <= 0 {
		return []Question{}
	}
	picked := lo.Samples(b.questions(topic), count)
	return lo.Map(picked, func(q Question, _ int) Question { return q.clone() })
}

// Size reports how many questions Sample can draw for topic.
func (b *Bank) Size(topic string) int {
	return len(b.questions(topic))
}

// Has reports whether topic has its own curated set.
func (b *Bank) Has(topic string) bool {
	_, ok := b.topics[normalizeTopic(topic)]
	return ok
}

// Topics lists the bank keys in sorted order.
func (b *Bank) Topics() []string {
	keys := lo.Keys(b.topics)
	slices.Sort(keys)
	return keys
}

func (b *Bank) questions(topic string) []Question {
	if qs, ok := b.topics[normalizeTopic(topic)]; ok {
		return qs
	}
	return b.topics[DefaultTopic]
}

func normalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

func checkQuestion(q Question) error {
	switch {
	case strings.TrimSpace(q.Question) == "":
		return errEmptyQuestionText
	case len(q.Options) != OptionsPerQuestion:
		return fmt.Errorf("expected %d options, got %d", OptionsPerQuestion, len(q.Options))
	case q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options):
		return fmt.Errorf("correct_answer %d out of range", q.CorrectAnswer)
	}
	return nil
}
