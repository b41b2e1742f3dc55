package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
)

type suggestionRequest struct {
	Message   string `json:"message"`
	UserQuery string `json:"user_query"`
	Category  string `json:"category"`
}

// CreateSuggestion records a suggestion left through the chat widget.
func CreateSuggestion(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req suggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			writeError(w, http.StatusBadRequest, "Missing message")
			return
		}

		sug, err := d.Store.AddSuggestion(req.Message, req.UserQuery, req.Category)
		if err != nil {
			d.Logger.Error("failed to store suggestion", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to store suggestion")
			return
		}
		writeJSON(w, http.StatusCreated, sug)
	}
}

// ListSuggestions serves all stored suggestions, possibly empty.
func ListSuggestions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sugs, err := d.Store.Suggestions()
		if err != nil {
			d.Logger.Error("failed to load suggestions", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load suggestions")
			return
		}
		writeJSON(w, http.StatusOK, sugs)
	}
}
