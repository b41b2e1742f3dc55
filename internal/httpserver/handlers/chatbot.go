package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/folio-dev/folio/internal/chatbot"
	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
)

// Summary serves the fixed-shape digest the widget shows on load.
func Summary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Store.Load()
		if err != nil {
			d.Logger.Error("failed to load document", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load portfolio data")
			return
		}

		summary, err := chatbot.Summarize(doc)
		if err != nil {
			d.Logger.Error("failed to build summary", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Portfolio data is incomplete")
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

type queryRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// Query answers chat questions. With an explicit type tag the topic is taken
// as stated and the response is a topic-shaped object; otherwise the free-text
// query runs through the classifier and the response carries a rendered
// answer string. Both paths read the same freshly loaded document.
func Query(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		doc, err := d.Store.Load()
		if err != nil {
			d.Logger.Error("failed to load document", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load portfolio data")
			return
		}

		if req.Type != "" {
			topic, payload := chatbot.Respond(req.Type, doc)
			countTopic(r, d, topic)
			writeJSON(w, http.StatusOK, payload)
			return
		}

		query := strings.TrimSpace(req.Query)
		if query == "" {
			writeError(w, http.StatusBadRequest, "Missing query")
			return
		}

		topic := d.Classifier.Classify(query)
		countTopic(r, d, topic)
		writeJSON(w, http.StatusOK, map[string]string{
			"topic":  string(topic),
			"answer": chatbot.Answer(topic, doc),
		})
	}
}

// Chatbot is the legacy minimal variant: GET /chatbot?q=... answering with a
// plain {answer} string.
func Chatbot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeError(w, http.StatusBadRequest, "Missing query parameter 'q'")
			return
		}

		doc, err := d.Store.Load()
		if err != nil {
			d.Logger.Error("failed to load document", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load portfolio data")
			return
		}

		topic := d.Classifier.Classify(query)
		d.Logger.Info("chatbot query",
			logger.String("query", query),
			logger.String("topic", string(topic)))
		countTopic(r, d, topic)

		writeJSON(w, http.StatusOK, map[string]string{
			"answer": chatbot.Answer(topic, doc),
		})
	}
}

// countTopic bumps the analytics counter, best effort.
func countTopic(r *http.Request, d deps.Deps, topic chatbot.Topic) {
	if !d.Analytics.Enabled() {
		return
	}
	if err := d.Analytics.IncrementTopic(r.Context(), string(topic)); err != nil {
		d.Logger.Debug("failed to count topic",
			logger.String("topic", string(topic)),
			logger.Error(err))
	}
}
