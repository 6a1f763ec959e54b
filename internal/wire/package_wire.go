package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePackage(r chi.Router, packageHandler *adaptor.PackageHandler) {
	r.Route("/packages", func(r chi.Router) {
		r.Post("/", packageHandler.Create)
		r.Get("/", packageHandler.List)
		r.Get("/categories", packageHandler.Categories)
		r.Get("/random-packages", packageHandler.Random)
		r.Get("/{id}", packageHandler.GetByID)
	})

	// The homepage teaser is also reachable at the root, outside the
	// /packages prefix.
	r.Get("/random-packages", packageHandler.Random)
}
