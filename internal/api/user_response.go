package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"Alice"`
	Email       string    `json:"email" example:"alice@example.com"`
	IsActive    bool      `json:"is_active" example:"true"`
	IsStaff     bool      `json:"is_staff" example:"false"`
	IsSuperuser bool      `json:"is_superuser" example:"false"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
