package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGuideApplication(r chi.Router, applicationHandler *adaptor.GuideApplicationHandler) {
	r.Route("/guide-applications", func(r chi.Router) {
		r.Post("/", applicationHandler.Apply)
		r.Get("/", applicationHandler.GetByEmail)
	})
}
