package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StoryHandler struct {
	service usecase.StoryService
	log     *zap.Logger
}

func NewStoryHandler(service usecase.StoryService, log *zap.Logger) *StoryHandler {
	return &StoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "story")),
	}
}

// Create handles POST /stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create story")
		return
	}

	utils.ResponseCreated(w, "Story created", result)
}

// List handles GET /stories. Filters ride on the query string:
// ?email= restricts to an author, ?status= to a moderation state, and
// ?random=N switches to a random sample of the filtered set.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	f := repository.StoryFilter{
		CreatedBy: query.Get("email"),
		Status:    query.Get("status"),
	}
	sampleSize := utils.ParseInt(query.Get("random"), 0)

	stories, err := h.service.List(r.Context(), f, sampleSize)
	if err != nil {
		handleServiceError(w, h.log, err, "list stories")
		return
	}

	utils.ResponseSuccess(w, "success", stories)
}

// ListAll handles GET /stories/all-stories (paginated, admin view)
func (h *StoryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status := query.Get("status")
	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseInt(query.Get("limit"), 10)

	result, err := h.service.ListAll(r.Context(), status, page, limit)
	if err != nil {
		handleServiceError(w, h.log, err, "list stories")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetByID handles GET /stories/{id}
func (h *StoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Story ID is required", nil)
		return
	}

	story, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get story")
		return
	}

	utils.ResponseSuccess(w, "success", story)
}

// Delete handles DELETE /stories/{id}
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Story ID is required", nil)
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete story")
		return
	}

	utils.ResponseSuccess(w, "Story deleted", result)
}

// Update handles PATCH /stories/{id}
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Story ID is required", nil)
		return
	}

	var req request.UpdateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update story")
		return
	}

	utils.ResponseSuccess(w, "Story updated", result)
}

// Approve handles PATCH /stories/{id}/approve
func (h *StoryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Story ID is required", nil)
		return
	}

	var req request.ApproveStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.SetStatus(r.Context(), id, entity.StoryStatus(req.Status))
	if err != nil {
		handleServiceError(w, h.log, err, "moderate story")
		return
	}

	utils.ResponseSuccess(w, "Story status updated", result)
}

// AddImage handles PATCH /stories/add-image/{id}
func (h *StoryHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Story ID is required", nil)
		return
	}

	var req request.StoryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.AddImage(r.Context(), id, req.ImageURL)
	if err != nil {
		handleServiceError(w, h.log, err, "add story image")
		return
	}

	utils.ResponseSuccess(w, "Image added", result)
}

// RemoveImage handles PATCH /stories/remove-image/{id}
func (h *StoryHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Story ID is required", nil)
		return
	}

	var req request.StoryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.RemoveImage(r.Context(), id, req.ImageURL)
	if err != nil {
		handleServiceError(w, h.log, err, "remove story image")
		return
	}

	utils.ResponseSuccess(w, "Image removed", result)
}
