package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin mounts the dashboard routes behind token auth plus an
// admin role check.
func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, config *utils.Config, log *zap.Logger) {
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.RequireRoles(log, "admin"),
	).Get("/admin/stats", adminHandler.Stats)
}
