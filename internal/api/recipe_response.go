package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// swagger:model api.RecipeResponse
type RecipeResponse struct {
	ID          int             `json:"id" example:"1"`
	Title       string          `json:"title" example:"Sample recipe"`
	TimeMinutes int             `json:"time_minutes" example:"5"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"5.50"`
	Description string          `json:"description" example:"Sample recipe description."`
	CreatedAt   time.Time       `json:"created_at"`
}
