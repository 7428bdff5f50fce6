// Package quiz implements the fixed cybersecurity quiz: an embedded question
// bank and the one-shot session state machine that plays through a shuffled
// copy of it.
package quiz

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content/questions.yaml
var defaultContent []byte

// Kind distinguishes how a question is rendered and answered.
type Kind string

const (
	MultipleChoice Kind = "mcq"
	TrueFalse      Kind = "tf"
)

// Question is one immutable quiz record. Choices are rendered only for
// multiple-choice questions; true/false questions carry the implicit
// True/False pair.
type Question struct {
	Prompt      string   `yaml:"prompt"`
	Kind        Kind     `yaml:"kind"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Choices     []string `yaml:"choices"`
}

type bankDocument struct {
	Questions []Question `yaml:"questions"`
}

// LoadBank parses a YAML question bank.
func LoadBank(data []byte) ([]Question, error) {
	var doc bankDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse quiz content: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("quiz content has no questions")
	}
	for i, q := range doc.Questions {
		if q.Prompt == "" || q.Answer == "" {
			return nil, fmt.Errorf("quiz question %d missing prompt or answer", i+1)
		}
		switch q.Kind {
		case MultipleChoice:
			if len(q.Choices) == 0 {
				return nil, fmt.Errorf("multiple-choice question %d has no choices", i+1)
			}
		case TrueFalse:
			if len(q.Choices) == 0 {
				doc.Questions[i].Choices = []string{"True", "False"}
			}
		default:
			return nil, fmt.Errorf("quiz question %d has unknown kind %q", i+1, q.Kind)
		}
	}
	return doc.Questions, nil
}

// MustLoadDefaultBank loads the embedded bank and panics on a broken build.
func MustLoadDefaultBank() []Question {
	bank, err := LoadBank(defaultContent)
	if err != nil {
		panic(err)
	}
	return bank
}
