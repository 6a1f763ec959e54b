package request

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}
