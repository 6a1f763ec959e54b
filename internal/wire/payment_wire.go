package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Post("/create-booking-payment-intent", paymentHandler.CreateIntent)
	r.Post("/payments", paymentHandler.Record)
}
