package chatbot

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Topic is a classifier output category driving which document fields populate
// an answer.
type Topic string

const (
	TopicContact        Topic = "contact"
	TopicSkills         Topic = "skills"
	TopicProjects       Topic = "projects"
	TopicExperience     Topic = "experience"
	TopicProfile        Topic = "profile"
	TopicCertifications Topic = "certifications"
	TopicUnknown        Topic = "unknown"
)

// Rule maps trigger substrings to a topic. Rules are evaluated in order and
// the first trigger contained in the query wins, so rule position is part of
// the contract.
type Rule struct {
	Topic    Topic    `yaml:"topic"`
	Triggers []string `yaml:"triggers"`
}

// DefaultRules is the built-in precedence: contact before skills before
// projects before experience before profile. "project" never triggers the
// experience branch; "work" and "career" do.
func DefaultRules() []Rule {
	return []Rule{
		{Topic: TopicContact, Triggers: []string{"contact", "email", "phone", "reach you"}},
		{Topic: TopicSkills, Triggers: []string{"skill", "tech stack", "languages"}},
		{Topic: TopicProjects, Triggers: []string{"project", "portfolio", "built"}},
		{Topic: TopicExperience, Triggers: []string{"experience", "work", "career", "job"}},
		{Topic: TopicProfile, Triggers: []string{"about", "who are you", "yourself", "profile"}},
	}
}

var knownTopics = map[Topic]bool{
	TopicContact:        true,
	TopicSkills:         true,
	TopicProjects:       true,
	TopicExperience:     true,
	TopicProfile:        true,
	TopicCertifications: true,
}

// LoadRules reads an ordered rule list from a YAML file, so the precedence can
// be versioned alongside the deployment instead of recompiled.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules yaml: %w", err)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}
	for i, rule := range rules {
		if !knownTopics[rule.Topic] {
			return nil, fmt.Errorf("rule %d: unknown topic %q", i, rule.Topic)
		}
		if len(rule.Triggers) == 0 {
			return nil, fmt.Errorf("rule %d (%s): no triggers", i, rule.Topic)
		}
		// Queries are lowercased before matching, so triggers must be too.
		for j, trigger := range rule.Triggers {
			trigger = strings.ToLower(strings.TrimSpace(trigger))
			if trigger == "" {
				return nil, fmt.Errorf("rule %d (%s): blank trigger", i, rule.Topic)
			}
			rules[i].Triggers[j] = trigger
		}
	}
	return rules, nil
}
