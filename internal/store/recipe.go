// File: internal/store/recipe.go
package store

import (
	"context"
	"fmt"

	"recipe-box/internal/database"
	"recipe-box/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateRecipe(ctx context.Context, db database.DB, r *model.Recipe) (*model.Recipe, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO recipes (user_id, title, time_minutes, price, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		r.UserID,
		r.Title,
		r.TimeMinutes,
		r.Price,
		r.Description,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateRecipe: %w", err)
	}
	return r, nil
}

func ListRecipes(ctx context.Context, db database.DB, userID int) ([]model.Recipe, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, title, time_minutes, price, description, created_at
		 FROM recipes WHERE user_id = $1
		 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.TimeMinutes, &r.Price, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListRecipes: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecipes: %w", err)
	}
	return recipes, nil
}

func GetRecipeByID(ctx context.Context, db database.DB, userID, recipeID int) (*model.Recipe, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, title, time_minutes, price, description, created_at
		 FROM recipes WHERE id = $1 AND user_id = $2`,
		recipeID,
		userID,
	)
	r := &model.Recipe{}
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.TimeMinutes, &r.Price, &r.Description, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetRecipeByID: %w", err)
	}
	return r, nil
}

func UpdateRecipe(ctx context.Context, db database.DB, r *model.Recipe) error {
	tag, err := db.Exec(ctx,
		`UPDATE recipes SET title = $1, time_minutes = $2, price = $3, description = $4
		 WHERE id = $5 AND user_id = $6`,
		r.Title,
		r.TimeMinutes,
		r.Price,
		r.Description,
		r.ID,
		r.UserID,
	)
	if err != nil {
		return fmt.Errorf("UpdateRecipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateRecipe: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteRecipe(ctx context.Context, db database.DB, userID, recipeID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM recipes WHERE id = $1 AND user_id = $2`,
		recipeID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteRecipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteRecipe: %w", pgx.ErrNoRows)
	}
	return nil
}
