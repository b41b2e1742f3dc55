package handlers

import (
	"net/http"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
)

type analyticsResponse struct {
	Enabled bool             `json:"enabled"`
	Topics  map[string]int64 `json:"topics,omitempty"`
}

// Analytics serves per-topic query counters when Redis is configured.
func Analytics(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Analytics.Enabled() {
			writeJSON(w, http.StatusOK, analyticsResponse{Enabled: false})
			return
		}

		stats, err := d.Analytics.TopicStats(r.Context())
		if err != nil {
			d.Logger.Error("failed to load topic stats", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load analytics")
			return
		}
		writeJSON(w, http.StatusOK, analyticsResponse{Enabled: true, Topics: stats})
	}
}
