package chatbot

import "github.com/folio-dev/folio/internal/portfolio"

// ValidTypes lists the explicit topic tags the typed query path accepts.
var ValidTypes = []string{"contact", "skills", "projects", "certifications", "experience", "default"}

// Respond serves the query-with-type path: the caller states the topic, so no
// classification happens; the document fields are projected into a
// topic-shaped object. Unknown or "default" tags return a help object listing
// the valid types. The returned Topic feeds the analytics counters.
func Respond(typeTag string, doc *portfolio.Document) (Topic, any) {
	switch Topic(typeTag) {
	case TopicContact:
		return TopicContact, map[string]any{
			"contact": nestedObject(doc.PersonalInfo, "contact"),
			"social":  nestedObject(doc.PersonalInfo, "social"),
		}
	case TopicSkills:
		return TopicSkills, map[string]any{"skills": doc.Skills}
	case TopicProjects:
		return TopicProjects, map[string]any{"projects": projectViews(doc.Projects)}
	case TopicCertifications:
		return TopicCertifications, map[string]any{"certifications": certificationViews(doc.Certifications)}
	case TopicExperience:
		return TopicExperience, map[string]any{"experience": experienceViews(doc.Experience)}
	default:
		return TopicUnknown, map[string]any{
			"message":         "Tell me which topic you're interested in.",
			"available_types": ValidTypes,
		}
	}
}

// projectViews projects full Project entities down to the fields the widget
// renders.
func projectViews(items []portfolio.Item) []map[string]any {
	views := make([]map[string]any, 0, len(items))
	for _, it := range items {
		views = append(views, map[string]any{
			"title":        itemField(it, "title"),
			"description":  itemField(it, "description"),
			"technologies": it["technologies"],
		})
	}
	return views
}

func certificationViews(items []portfolio.Item) []map[string]any {
	views := make([]map[string]any, 0, len(items))
	for _, it := range items {
		views = append(views, map[string]any{
			"title":  itemField(it, "title"),
			"issuer": itemField(it, "issuer"),
			"date":   itemField(it, "date"),
		})
	}
	return views
}

func experienceViews(items []portfolio.Item) []map[string]any {
	views := make([]map[string]any, 0, len(items))
	for _, it := range items {
		views = append(views, map[string]any{
			"position": itemField(it, "position"),
			"company":  itemField(it, "company"),
			"duration": itemField(it, "duration"),
		})
	}
	return views
}
