package chatbot

import "strings"

// Classifier resolves free-text questions to topics by ordered substring
// containment. No scoring, no multi-topic match: the first rule whose trigger
// appears in the normalized query short-circuits.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier over the given ordered rules; nil or empty
// falls back to DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify normalizes the query (lowercase, trimmed) and returns the first
// matching topic, or TopicUnknown. Callers must reject empty queries before
// classification; an empty string here simply yields TopicUnknown.
func (c *Classifier) Classify(query string) Topic {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return TopicUnknown
	}

	for _, rule := range c.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(q, trigger) {
				return rule.Topic
			}
		}
	}
	return TopicUnknown
}

// Rules exposes the active rule order so precedence is enumerable.
func (c *Classifier) Rules() []Rule {
	return c.rules
}
