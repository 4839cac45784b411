// File: internal/model/recipe.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe 食譜主體，price 以定點小數儲存 (NUMERIC(5,2))
type Recipe struct {
	ID          int             `db:"id" json:"id"`
	UserID      int             `db:"user_id" json:"user_id"`
	Title       string          `db:"title" json:"title"`
	TimeMinutes int             `db:"time_minutes" json:"time_minutes"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
