package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/httpserver/handlers"
	"github.com/folio-dev/folio/internal/portfolio"
)

func init() { Register(registerCollections) }

// The three collections share one handler set, mounted per name.
func registerCollections(r chi.Router, d deps.Deps) {
	for _, name := range []string{
		portfolio.CollectionCertifications,
		portfolio.CollectionProjects,
		portfolio.CollectionExperience,
	} {
		base := "/api/" + name
		r.Get(base, handlers.ListCollection(d, name))
		r.Post(base, handlers.CreateCollectionItem(d, name))
		r.Get(base+"/{id}", handlers.GetCollectionItem(d, name))
		r.Put(base+"/{id}", handlers.UpdateCollectionItem(d, name))
		r.Delete(base+"/{id}", handlers.DeleteCollectionItem(d, name))
	}
}
