package request

type CreateApplicationRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
	CVLink string `json:"cvLink" validate:"omitempty,url"`
}
