// File: internal/model/tag.go
package model

import "time"

// Tag 使用者自訂的食譜標籤，僅擁有者可見
type Tag struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
