package request

type CreateStoryRequest struct {
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	CreatedBy string   `json:"createdBy" validate:"required,email"`
	Images    []string `json:"images"`
}

type UpdateStoryRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type ApproveStoryRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type StoryImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}
