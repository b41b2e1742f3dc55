package handlers

import (
	"net/http"

	"github.com/folio-dev/folio/internal/httpserver/deps"
)

type rootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root serves the endpoint directory so the API is explorable from a browser.
func Root(d deps.Deps) http.HandlerFunc {
	endpoints := map[string]string{
		"health":         "GET /health",
		"portfolio":      "GET /api/portfolio",
		"personal_info":  "GET|PUT /api/personal-info",
		"certifications": "GET|POST /api/certifications, GET|PUT|DELETE /api/certifications/{id}",
		"projects":       "GET|POST /api/projects, GET|PUT|DELETE /api/projects/{id}",
		"experience":     "GET|POST /api/experience, GET|PUT|DELETE /api/experience/{id}",
		"skills":         "GET|PUT /api/skills",
		"summary":        "GET /api/chatbot/summary",
		"query":          "POST /api/chatbot/query",
		"suggestions":    "GET|POST /api/chatbot/suggestions",
		"analytics":      "GET /api/chatbot/analytics",
		"chatbot":        "GET /chatbot?q=...",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rootResponse{
			Service:   "folio",
			Version:   d.Version,
			Endpoints: endpoints,
		})
	}
}
