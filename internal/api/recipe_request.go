package api

import "github.com/shopspring/decimal"

// swagger:model api.RecipeRequest
type RecipeRequest struct {
	Title       string          `json:"title" validate:"required" example:"Sample recipe"`
	TimeMinutes int             `json:"time_minutes" validate:"required,gt=0" example:"5"`
	Price       decimal.Decimal `json:"price" validate:"required" swaggertype:"string" example:"5.50"`
	Description string          `json:"description" example:"Sample recipe description."`
}
