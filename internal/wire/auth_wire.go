package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Token issuance is public; possession of a registered email is the
	// only credential the flow carries.
	r.Post("/jwt", authHandler.IssueToken)
}
