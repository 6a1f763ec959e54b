package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures account and role-workflow routes.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Put("/", userHandler.Upsert)
		r.Get("/", userHandler.List)
		r.Get("/admin", userHandler.ListAdmin)

		// /role/guide must register alongside /role/{email}; chi matches
		// the static segment first.
		r.Get("/role/guide", userHandler.ListGuides)
		r.Get("/role/{email}", userHandler.GetRole)

		r.Get("/{id}", userHandler.GetByID)

		r.Patch("/", userHandler.Update)
		r.Patch("/approve/{id}", userHandler.ApproveGuide)
		r.Patch("/reject/{id}", userHandler.RejectGuide)
		r.Patch("/request-role", userHandler.RequestRole)
		r.Patch("/approve-role", userHandler.ApproveRole)
	})
}
