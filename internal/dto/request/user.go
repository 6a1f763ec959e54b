package request

// UpsertUserRequest backs PUT /users. IsRegistering distinguishes an
// explicit sign-up (duplicate email is a conflict) from a social login
// (duplicate email just refreshes lastLoginAt).
type UpsertUserRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	AuthMethod    string `json:"authMethod"`
	IsRegistering bool   `json:"isRegistering"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type RequestRoleRequest struct {
	RequestedRole string `json:"requestedRole" validate:"required,oneof=guide admin"`
}

type ApproveRoleRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}
