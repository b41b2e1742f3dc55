package handlers

import (
	"net/http"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
)

// Portfolio serves the full document.
func Portfolio(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Store.Load()
		if err != nil {
			d.Logger.Error("failed to load document", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load portfolio data")
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}
