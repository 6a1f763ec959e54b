package adaptor

import (
	"net/http"
	"strings"

	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth             *AuthHandler
	User             *UserHandler
	Package          *PackageHandler
	Story            *StoryHandler
	Booking          *BookingHandler
	Payment          *PaymentHandler
	GuideApplication *GuideApplicationHandler
	Admin            *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:             NewAuthHandler(service.Auth, log),
		User:             NewUserHandler(service.User, log),
		Package:          NewPackageHandler(service.Package, log),
		Story:            NewStoryHandler(service.Story, log),
		Booking:          NewBookingHandler(service.Booking, log),
		Payment:          NewPaymentHandler(service.Payment, log),
		GuideApplication: NewGuideApplicationHandler(service.GuideApplication, log),
		Admin:            NewAdminHandler(service.Admin, log),
	}
}

// handleServiceError maps service error messages onto HTTP statuses.
// Classification rides on message substrings, so service messages must
// keep using the "not found" / "already" / "invalid" vocabulary.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"):
		log.Warn(operation+" failed - duplicate registration",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflicting state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" rejected - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
