package api

import "github.com/shopspring/decimal"

// PatchRecipeRequest 局部更新：nil 欄位保持原值，帶值的欄位仍套用完整更新的限制
// swagger:model api.PatchRecipeRequest
type PatchRecipeRequest struct {
	Title       *string          `json:"title" validate:"omitnil,min=1" example:"New title"`
	TimeMinutes *int             `json:"time_minutes" validate:"omitnil,gt=0" example:"10"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string" example:"7.25"`
	Description *string          `json:"description" example:"New description."`
}
