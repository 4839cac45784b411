package api

// swagger:model api.AdminUpdateUserRequest
type AdminUpdateUserRequest struct {
	Name        string `json:"name" validate:"required" example:"Alice"`
	Email       string `json:"email" validate:"required,email" example:"alice@example.com"`
	IsActive    bool   `json:"is_active" example:"true"`
	IsStaff     bool   `json:"is_staff" example:"false"`
	IsSuperuser bool   `json:"is_superuser" example:"false"`
}
