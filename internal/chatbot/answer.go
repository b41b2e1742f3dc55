package chatbot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
)

// FallbackAnswer is returned for queries no rule matches. Not an error: the
// widget renders it like any other answer.
const FallbackAnswer = "Sorry, I don't have that information. " +
	"Try asking about my skills, projects, experience, or how to contact me."

// Answer renders the canned textual answer for a topic from the document.
// Unknown topics get the fallback string; this function never fails.
func Answer(topic Topic, doc *portfolio.Document) string {
	switch topic {
	case TopicSkills:
		return skillsAnswer(doc)
	case TopicProjects:
		return projectsAnswer(doc)
	case TopicExperience:
		return experienceAnswer(doc)
	case TopicProfile:
		return profileAnswer(doc)
	case TopicContact:
		return contactAnswer(doc)
	default:
		return FallbackAnswer
	}
}

// skillsAnswer flattens every skill category into one comma-joined list.
// Categories are visited in sorted name order so the answer is deterministic.
func skillsAnswer(doc *portfolio.Document) string {
	categories := make([]string, 0, len(doc.Skills))
	for category := range doc.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var flat []string
	for _, category := range categories {
		flat = append(flat, doc.Skills[category]...)
	}
	if len(flat) == 0 {
		return "I haven't listed any skills yet."
	}
	return strings.Join(flat, ", ")
}

func projectsAnswer(doc *portfolio.Document) string {
	if len(doc.Projects) == 0 {
		return "I haven't listed any projects yet."
	}
	lines := make([]string, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		lines = append(lines, fmt.Sprintf("%s: %s", itemField(p, "title"), itemField(p, "description")))
	}
	return strings.Join(lines, "\n")
}

func experienceAnswer(doc *portfolio.Document) string {
	if len(doc.Experience) == 0 {
		return "I haven't listed any work experience yet."
	}
	lines := make([]string, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		lines = append(lines, fmt.Sprintf("%s at %s (%s)",
			itemField(e, "position"), itemField(e, "company"), itemField(e, "duration")))
	}
	return strings.Join(lines, "\n")
}

func profileAnswer(doc *portfolio.Document) string {
	var lines []string
	for _, key := range []string{"name", "title", "about"} {
		if v := stringField(doc.PersonalInfo, key); v != "" {
			lines = append(lines, v)
		}
	}
	if len(lines) == 0 {
		return "I don't have a profile to share yet."
	}
	return strings.Join(lines, "\n")
}

func contactAnswer(doc *portfolio.Document) string {
	contact := nestedObject(doc.PersonalInfo, "contact")
	var lines []string
	if email := stringField(contact, "email"); email != "" {
		lines = append(lines, "Email: "+email)
	}
	if phone := stringField(contact, "phone"); phone != "" {
		lines = append(lines, "Phone: "+phone)
	}
	if len(lines) == 0 {
		return "I haven't published contact details."
	}
	return strings.Join(lines, "\n")
}

// itemField reads a string value out of a schemaless collection item.
func itemField(it portfolio.Item, key string) string {
	return stringField(it, key)
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func nestedObject(m map[string]any, key string) map[string]any {
	obj, _ := m[key].(map[string]any)
	return obj
}
