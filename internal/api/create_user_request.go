package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required" example:"Alice"`
	Email       string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password    string `json:"password" validate:"required,min=8" example:"Secret123!"`
	IsActive    bool   `json:"is_active" example:"true"`
	IsStaff     bool   `json:"is_staff" example:"false"`
	IsSuperuser bool   `json:"is_superuser" example:"false"`
}
