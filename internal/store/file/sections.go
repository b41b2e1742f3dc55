package file

// Non-collection sections: personal_info and skills are read and replaced as
// whole objects. PUT semantics are a shallow merge, one level deep: a patch
// key whose value is a nested object (location, contact, a skill category)
// replaces that object wholesale.

import (
	"github.com/folio-dev/folio/internal/portfolio"
)

// PersonalInfo returns the personal_info section as stored.
func (s *Store) PersonalInfo() (map[string]any, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.PersonalInfo == nil {
		return map[string]any{}, nil
	}
	return doc.PersonalInfo, nil
}

// MergePersonalInfo shallow-merges patch over personal_info and persists.
func (s *Store) MergePersonalInfo(patch map[string]any) (map[string]any, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.PersonalInfo == nil {
		doc.PersonalInfo = map[string]any{}
	}
	portfolio.Merge(doc.PersonalInfo, patch)

	s.touch(doc)
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc.PersonalInfo, nil
}

// Skills returns the skills section as stored.
func (s *Store) Skills() (map[string][]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Skills == nil {
		return map[string][]string{}, nil
	}
	return doc.Skills, nil
}

// MergeSkills merges patch categories over the skills section and persists.
// A category present in patch replaces the stored list for that category.
func (s *Store) MergeSkills(patch map[string][]string) (map[string][]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.Skills == nil {
		doc.Skills = map[string][]string{}
	}
	for category, skills := range patch {
		doc.Skills[category] = skills
	}

	s.touch(doc)
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc.Skills, nil
}
