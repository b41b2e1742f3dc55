package file

import (
	"time"

	"github.com/folio-dev/folio/internal/portfolio"
)

// DefaultSuggestionCategory is used when a suggestion arrives without one.
const DefaultSuggestionCategory = "general"

// AddSuggestion appends a chatbot suggestion with a sequential 1-based id and
// an ISO-8601 timestamp. The suggestions slice is created lazily on first use.
func (s *Store) AddSuggestion(message, userQuery, category string) (portfolio.Suggestion, error) {
	doc, err := s.Load()
	if err != nil {
		return portfolio.Suggestion{}, err
	}

	if category == "" {
		category = DefaultSuggestionCategory
	}

	sug := portfolio.Suggestion{
		ID:        len(doc.ChatbotSuggestions) + 1,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Message:   message,
		UserQuery: userQuery,
		Category:  category,
	}
	doc.ChatbotSuggestions = append(doc.ChatbotSuggestions, sug)

	s.touch(doc)
	if err := s.Save(doc); err != nil {
		return portfolio.Suggestion{}, err
	}
	return sug, nil
}

// Suggestions returns all stored suggestions, oldest first. Documents that
// never received one yield an empty slice.
func (s *Store) Suggestions() ([]portfolio.Suggestion, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if doc.ChatbotSuggestions == nil {
		return []portfolio.Suggestion{}, nil
	}
	return doc.ChatbotSuggestions, nil
}
