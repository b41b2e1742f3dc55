package chatbot

import (
	"errors"
	"fmt"

	"github.com/folio-dev/folio/internal/portfolio"
)

// Summary is the fixed-shape digest served to the chat widget on load.
type Summary struct {
	Name                string   `json:"name"`
	Title               string   `json:"title"`
	Location            string   `json:"location"`
	Email               string   `json:"email"`
	TotalCertifications int      `json:"total_certifications"`
	TotalProjects       int      `json:"total_projects"`
	TotalExperience     int      `json:"total_experience"`
	KeySkills           []string `json:"key_skills"`
}

// Summarize computes the digest. Key skills are the programming_languages and
// web_technologies categories concatenated in that order, duplicates kept.
// Documents without personal_info or skills cannot be summarized.
func Summarize(doc *portfolio.Document) (*Summary, error) {
	if doc.PersonalInfo == nil {
		return nil, errors.New("document has no personal_info section")
	}
	if doc.Skills == nil {
		return nil, errors.New("document has no skills section")
	}

	location := nestedObject(doc.PersonalInfo, "location")
	contact := nestedObject(doc.PersonalInfo, "contact")

	keySkills := make([]string, 0,
		len(doc.Skills["programming_languages"])+len(doc.Skills["web_technologies"]))
	keySkills = append(keySkills, doc.Skills["programming_languages"]...)
	keySkills = append(keySkills, doc.Skills["web_technologies"]...)

	return &Summary{
		Name:                stringField(doc.PersonalInfo, "name"),
		Title:               stringField(doc.PersonalInfo, "title"),
		Location:            fmt.Sprintf("%s, %s", stringField(location, "city"), stringField(location, "state")),
		Email:               stringField(contact, "email"),
		TotalCertifications: len(doc.Certifications),
		TotalProjects:       len(doc.Projects),
		TotalExperience:     len(doc.Experience),
		KeySkills:           keySkills,
	}, nil
}
