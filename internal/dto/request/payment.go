package request

type CreateIntentRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
}

type CreatePaymentRequest struct {
	BookingID     string  `json:"bookingId" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
}
