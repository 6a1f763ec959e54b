package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type GuideApplicationHandler struct {
	service usecase.GuideApplicationService
	log     *zap.Logger
}

func NewGuideApplicationHandler(service usecase.GuideApplicationService, log *zap.Logger) *GuideApplicationHandler {
	return &GuideApplicationHandler{
		service: service,
		log:     log.With(zap.String("handler", "guide_application")),
	}
}

// Apply handles POST /guide-applications
func (h *GuideApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req request.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Apply(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "apply as guide")
		return
	}

	utils.ResponseCreated(w, "Application submitted", result)
}

// GetByEmail handles GET /guide-applications?email=
func (h *GuideApplicationHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required in query", nil)
		return
	}

	app, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get application")
		return
	}

	utils.ResponseSuccess(w, "success", app)
}
