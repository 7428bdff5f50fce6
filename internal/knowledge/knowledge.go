// Package knowledge provides the static keyword-to-answer lookup backing the
// assistant's single-turn topic questions. Content ships embedded in the
// binary as YAML; entry order in the file is the resolution order.
package knowledge

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/knowledge.yaml
var defaultContent []byte

// Topic is one registered (keyword, answer) pair.
type Topic struct {
	Keyword string `yaml:"keyword"`
	Answer  string `yaml:"answer"`
}

// SmalltalkRule maps a set of trigger phrases to a fixed response. Rules are
// tried in file order after the topic scan finds nothing.
type SmalltalkRule struct {
	Contains []string `yaml:"contains"`
	Answer   string   `yaml:"answer"`
}

type document struct {
	Topics    []Topic         `yaml:"topics"`
	Smalltalk []SmalltalkRule `yaml:"smalltalk"`
	Fallback  string          `yaml:"fallback"`
}

// Base is the loaded knowledge base. It is immutable after construction.
type Base struct {
	topics    []Topic
	smalltalk []SmalltalkRule
	fallback  string
}

// Load parses a YAML knowledge document.
func Load(data []byte) (*Base, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse knowledge content: %w", err)
	}
	if len(doc.Topics) == 0 {
		return nil, fmt.Errorf("knowledge content has no topics")
	}
	if doc.Fallback == "" {
		return nil, fmt.Errorf("knowledge content has no fallback response")
	}
	return &Base{topics: doc.Topics, smalltalk: doc.Smalltalk, fallback: doc.Fallback}, nil
}

// MustLoadDefault loads the embedded content and panics on a malformed
// build. The embedded file is validated by tests, so this only fires if the
// binary itself is broken.
func MustLoadDefault() *Base {
	b, err := Load(defaultContent)
	if err != nil {
		panic(err)
	}
	return b
}

// TopicCount reports how many topics are registered.
func (b *Base) TopicCount() int { return len(b.topics) }

// Lookup scans registered topics in order and returns the answer for the
// first keyword found as a substring of the input. First-registered wins
// even when a later keyword would be a longer or more specific match; that
// ordering is part of the contract callers rely on.
func (b *Base) Lookup(input string) (answer, keyword string, ok bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, t := range b.topics {
		if strings.Contains(needle, t.Keyword) {
			return t.Answer, t.Keyword, true
		}
	}
	return "", "", false
}

// Smalltalk applies the secondary phrase battery in priority order.
func (b *Base) Smalltalk(input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, rule := range b.smalltalk {
		for _, phrase := range rule.Contains {
			if strings.Contains(needle, phrase) {
				return rule.Answer, true
			}
		}
	}
	return "", false
}

// Fallback returns the fixed response for unrecognized input.
func (b *Base) Fallback() string { return b.fallback }
