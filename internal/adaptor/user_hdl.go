package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Upsert handles PUT /users
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Upsert validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert user")
		return
	}

	if result.Created {
		utils.ResponseCreated(w, "User created", result)
		return
	}
	utils.ResponseSuccess(w, "Login time updated", result)
}

// List handles GET /users (all users, or one by ?email=)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	if email != "" {
		user, err := h.service.GetByEmail(r.Context(), email)
		if err != nil {
			handleServiceError(w, h.log, err, "get user")
			return
		}
		utils.ResponseSuccess(w, "success", user)
		return
	}

	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// ListAdmin handles GET /users/admin
func (h *UserHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := repository.UserQuery{
		Search:        query.Get("search"),
		SearchField:   query.Get("searchField"),
		Role:          query.Get("role"),
		RequestStatus: query.Get("requestStatus"),
	}
	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseInt(query.Get("limit"), 10)

	result, err := h.service.ListAdmin(r.Context(), q, page, limit)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ListGuides handles GET /users/role/guide; ?limit= switches to a
// random sample.
func (h *UserHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	sampleSize := utils.ParseInt(r.URL.Query().Get("limit"), 0)

	guides, err := h.service.ListGuides(r.Context(), sampleSize)
	if err != nil {
		handleServiceError(w, h.log, err, "list guides")
		return
	}

	utils.ResponseSuccess(w, "success", guides)
}

// GetByID handles GET /users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ApproveGuide handles PATCH /users/approve/{id}
func (h *UserHandler) ApproveGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.service.ApproveGuide(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "approve guide")
		return
	}

	utils.ResponseSuccess(w, "User approved and application updated", result)
}

// RejectGuide handles PATCH /users/reject/{id}
func (h *UserHandler) RejectGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.service.RejectGuide(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "reject guide")
		return
	}

	utils.ResponseSuccess(w, "Application rejected", result)
}

// Update handles PATCH /users?email=
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required in query", nil)
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), email, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", result)
}

// RequestRole handles PATCH /users/request-role?email=
func (h *UserHandler) RequestRole(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required in query", nil)
		return
	}

	var req request.RequestRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.RequestRole(r.Context(), email, req.RequestedRole)
	if err != nil {
		handleServiceError(w, h.log, err, "request role")
		return
	}

	utils.ResponseSuccess(w, "Request submitted", result)
}

// ApproveRole handles PATCH /users/approve-role?email=
func (h *UserHandler) ApproveRole(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required in query", nil)
		return
	}

	var req request.ApproveRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.ResolveRoleRequest(r.Context(), email, *req.Approve)
	if err != nil {
		handleServiceError(w, h.log, err, "approve role")
		return
	}

	message := "Role approved"
	if !*req.Approve {
		message = "Role rejected"
	}
	utils.ResponseSuccess(w, message, result)
}

// GetRole handles GET /users/role/{email}
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	role, err := h.service.GetRole(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get role")
		return
	}

	utils.ResponseSuccess(w, "success", response.RoleResponse{Role: role})
}
