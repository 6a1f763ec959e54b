package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.Create)
		r.Get("/", bookingHandler.ListByTourist)
		r.Get("/guide/{guideId}", bookingHandler.ListByGuide)
		r.Get("/{id}", bookingHandler.GetByID)
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)
		r.Delete("/{id}", bookingHandler.Delete)
	})
}
