package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
)

// GetPersonalInfo serves the personal_info section as stored.
func GetPersonalInfo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := d.Store.PersonalInfo()
		if err != nil {
			d.Logger.Error("failed to load personal_info", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load personal info")
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

// UpdatePersonalInfo shallow-merges the request body over personal_info.
// Nested objects like location or contact are replaced wholesale when the
// patch supplies that key.
func UpdatePersonalInfo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		info, err := d.Store.MergePersonalInfo(patch)
		if err != nil {
			d.Logger.Error("failed to update personal_info", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update personal info")
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

// GetSkills serves the skills section.
func GetSkills(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := d.Store.Skills()
		if err != nil {
			d.Logger.Error("failed to load skills", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load skills")
			return
		}
		writeJSON(w, http.StatusOK, skills)
	}
}

// UpdateSkills merges the request body's categories over the skills section.
func UpdateSkills(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body: expected {category: [skills]}")
			return
		}

		skills, err := d.Store.MergeSkills(patch)
		if err != nil {
			d.Logger.Error("failed to update skills", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update skills")
			return
		}
		writeJSON(w, http.StatusOK, skills)
	}
}
