package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/httpserver/handlers"
)

func init() { Register(registerPortfolio) }

func registerPortfolio(r chi.Router, d deps.Deps) {
	r.Get("/api/portfolio", handlers.Portfolio(d))

	r.Get("/api/personal-info", handlers.GetPersonalInfo(d))
	r.Put("/api/personal-info", handlers.UpdatePersonalInfo(d))

	r.Get("/api/skills", handlers.GetSkills(d))
	r.Put("/api/skills", handlers.UpdateSkills(d))
}
