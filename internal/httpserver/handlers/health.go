package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
)

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Analytics string `json:"analytics,omitempty"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Health reports store and analytics connectivity. The service stays "ok"
// even when the document file is unreadable: reads recover via the default
// document, so the condition is degraded rather than down.
func Health(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := "connected"
		if err := d.Store.Ping(); err != nil {
			d.Logger.Warn("health: document store unavailable", logger.Error(err))
			database = "unavailable"
		}

		resp := healthResponse{
			Status:    "ok",
			Database:  database,
			Uptime:    d.TimeNow().Sub(d.StartTime).Truncate(time.Second).String(),
			Timestamp: d.TimeNow().UTC().Format(time.RFC3339),
		}

		if d.Analytics.Enabled() {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := d.Analytics.Ping(ctx); err != nil {
				resp.Analytics = "unavailable"
			} else {
				resp.Analytics = "connected"
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
