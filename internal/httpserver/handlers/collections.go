package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
	"github.com/folio-dev/folio/internal/portfolio"
	filestore "github.com/folio-dev/folio/internal/store/file"
)

// The three collections share one CRUD protocol, so each handler takes the
// collection name and is mounted three times by the routes package.

// ListCollection serves all items of a collection.
func ListCollection(d deps.Deps, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Store.List(name)
		if err != nil {
			d.Logger.Error("failed to list collection",
				logger.String("collection", name),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load "+name)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// GetCollectionItem serves a single item by id.
func GetCollectionItem(d deps.Deps, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(w, r)
		if !ok {
			return
		}

		item, err := d.Store.Get(name, id)
		if err != nil {
			respondStoreError(w, d, name, id, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// CreateCollectionItem appends a new item and returns it with its assigned id.
func CreateCollectionItem(d deps.Deps, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body portfolio.Item
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		item, err := d.Store.Create(name, body)
		if err != nil {
			d.Logger.Error("failed to create item",
				logger.String("collection", name),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create "+name+" entry")
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

// UpdateCollectionItem shallow-merges the body over the item with the given id.
func UpdateCollectionItem(d deps.Deps, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(w, r)
		if !ok {
			return
		}

		var patch portfolio.Item
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		item, err := d.Store.Update(name, id, patch)
		if err != nil {
			respondStoreError(w, d, name, id, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// DeleteCollectionItem removes the item and returns it.
func DeleteCollectionItem(d deps.Deps, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(w, r)
		if !ok {
			return
		}

		item, err := d.Store.Delete(name, id)
		if err != nil {
			respondStoreError(w, d, name, id, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// itemID parses the {id} route parameter, answering 400 on garbage.
func itemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid id %q", raw))
		return 0, false
	}
	return id, true
}

func respondStoreError(w http.ResponseWriter, d deps.Deps, name string, id int, err error) {
	if errors.Is(err, filestore.ErrNotFound) {
		writeError(w, http.StatusNotFound,
			fmt.Sprintf("No %s entry with id %d", name, id))
		return
	}
	d.Logger.Error("store operation failed",
		logger.String("collection", name),
		logger.Int("id", id),
		logger.Error(err))
	writeError(w, http.StatusInternalServerError, "Failed to access "+name)
}
