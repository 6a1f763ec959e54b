package response

import "tour-booking/internal/data/repository"

type UpsertUserResponse struct {
	Created    bool   `json:"created"`
	InsertedID string `json:"insertedId,omitempty"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

// ApprovalResponse surfaces both halves of the approve/reject
// workflow. There is no rollback between them, so the caller can see a
// user update that succeeded next to an application update that
// matched nothing.
type ApprovalResponse struct {
	UserUpdate *repository.UpdateResult `json:"userUpdate"`
	AppUpdate  *repository.UpdateResult `json:"appUpdate"`
}
