package chatbot

import (
	"strings"
	"testing"

	"github.com/folio-dev/folio/internal/portfolio"
)

func testDocument() *portfolio.Document {
	return &portfolio.Document{
		PersonalInfo: map[string]any{
			"name":  "Alex Doe",
			"title": "Software Engineer",
			"about": "I build small services.",
			"location": map[string]any{
				"city":  "Lisbon",
				"state": "Lisboa",
			},
			"contact": map[string]any{
				"email": "alex@example.com",
				"phone": "+351 000 000 000",
			},
		},
		Certifications: []portfolio.Item{
			{"id": 1, "title": "Cert A"},
			{"id": 2, "title": "Cert B"},
			{"id": 3, "title": "Cert C"},
		},
		Projects: []portfolio.Item{
			{"id": 1, "title": "P1", "description": "D1", "technologies": []string{"Go"}},
			{"id": 2, "title": "P2", "description": "D2"},
		},
		Experience: []portfolio.Item{
			{"id": 1, "position": "Engineer", "company": "Example Labs", "duration": "2022 - Present"},
		},
		Skills: map[string][]string{
			"programming_languages": {"Python", "JavaScript"},
			"web_technologies":      {"HTTP"},
		},
	}
}

func TestAnswerSkills(t *testing.T) {
	answer := Answer(TopicSkills, testDocument())

	for _, skill := range []string{"Python", "JavaScript", "HTTP"} {
		if !strings.Contains(answer, skill) {
			t.Errorf("skills answer missing %q: %q", skill, answer)
		}
	}
}

func TestAnswerProjects(t *testing.T) {
	answer := Answer(TopicProjects, testDocument())

	if !strings.Contains(answer, "P1: D1") {
		t.Errorf("projects answer missing %q: %q", "P1: D1", answer)
	}
	if !strings.Contains(answer, "P2: D2") {
		t.Errorf("projects answer missing %q: %q", "P2: D2", answer)
	}
}

func TestAnswerExperience(t *testing.T) {
	answer := Answer(TopicExperience, testDocument())

	if !strings.Contains(answer, "Engineer at Example Labs (2022 - Present)") {
		t.Errorf("experience answer = %q", answer)
	}
}

func TestAnswerProfile(t *testing.T) {
	answer := Answer(TopicProfile, testDocument())

	for _, want := range []string{"Alex Doe", "Software Engineer", "I build small services."} {
		if !strings.Contains(answer, want) {
			t.Errorf("profile answer missing %q: %q", want, answer)
		}
	}
}

func TestAnswerContact(t *testing.T) {
	answer := Answer(TopicContact, testDocument())

	if !strings.Contains(answer, "alex@example.com") {
		t.Errorf("contact answer missing email: %q", answer)
	}
	if !strings.Contains(answer, "+351 000 000 000") {
		t.Errorf("contact answer missing phone: %q", answer)
	}
}

func TestAnswerUnknownIsFallback(t *testing.T) {
	if got := Answer(TopicUnknown, testDocument()); got != FallbackAnswer {
		t.Errorf("Answer(unknown) = %q, want fallback", got)
	}
}

func TestAnswerEmptyDocumentSections(t *testing.T) {
	doc := &portfolio.Document{PersonalInfo: map[string]any{}}

	tests := []struct {
		name  string
		topic Topic
	}{
		{name: "skills", topic: TopicSkills},
		{name: "projects", topic: TopicProjects},
		{name: "experience", topic: TopicExperience},
		{name: "profile", topic: TopicProfile},
		{name: "contact", topic: TopicContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Answer(tt.topic, doc); got == "" {
				t.Error("empty sections must still produce a human answer")
			}
		})
	}
}
