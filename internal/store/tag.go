// File: internal/store/tag.go
//
// 所有查詢都以 user_id 限定範圍：不屬於呼叫者的 id 與不存在的 id
// 一律表現為 pgx.ErrNoRows，不洩漏其他帳號的資料存在與否。
package store

import (
	"context"
	"fmt"

	"recipe-box/internal/database"
	"recipe-box/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateTag(ctx context.Context, db database.DB, t *model.Tag) (*model.Tag, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tags (user_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		t.UserID,
		t.Name,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTag: %w", err)
	}
	return t, nil
}

func ListTags(ctx context.Context, db database.DB, userID int) ([]model.Tag, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, name, created_at
		 FROM tags WHERE user_id = $1
		 ORDER BY name DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListTags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	return tags, nil
}

func GetTagByID(ctx context.Context, db database.DB, userID, tagID int) (*model.Tag, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, name, created_at
		 FROM tags WHERE id = $1 AND user_id = $2`,
		tagID,
		userID,
	)
	t := &model.Tag{}
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetTagByID: %w", err)
	}
	return t, nil
}

func UpdateTag(ctx context.Context, db database.DB, t *model.Tag) error {
	tag, err := db.Exec(ctx,
		`UPDATE tags SET name = $1
		 WHERE id = $2 AND user_id = $3`,
		t.Name,
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTag: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteTag(ctx context.Context, db database.DB, userID, tagID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tags WHERE id = $1 AND user_id = $2`,
		tagID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTag: %w", pgx.ErrNoRows)
	}
	return nil
}
