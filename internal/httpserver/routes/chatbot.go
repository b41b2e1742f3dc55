package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/httpserver/handlers"
)

func init() { Register(registerChatbot) }

func registerChatbot(r chi.Router, d deps.Deps) {
	r.Get("/api/chatbot/summary", handlers.Summary(d))
	r.Post("/api/chatbot/query", handlers.Query(d))
	r.Get("/api/chatbot/suggestions", handlers.ListSuggestions(d))
	r.Post("/api/chatbot/suggestions", handlers.CreateSuggestion(d))
	r.Get("/api/chatbot/analytics", handlers.Analytics(d))

	// Legacy minimal variant kept for the original widget
	r.Get("/chatbot", handlers.Chatbot(d))
}
