package recipes

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"recipe-box/internal/database"
	"recipe-box/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type requestValidator struct{ v *validator.Validate }

func (r *requestValidator) Validate(i interface{}) error { return r.v.Struct(i) }

func TestCreateRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing token data", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, `{"title":"Curry","time_minutes":30,"price":"5.25"}`, 0)
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newCtx(e, http.MethodPost, `{"title":""}`, 1)
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success assigns owner", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		var created *model.Recipe
		createRecipe = func(_ context.Context, _ database.DB, r *model.Recipe) (*model.Recipe, error) {
			created = r
			r.ID = 11
			r.CreatedAt = now
			return r, nil
		}
		ctx, rec := newCtx(e, http.MethodPost,
			`{"title":"Curry","time_minutes":30,"price":"5.25","description":"Spicy"}`, 7)
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 7, created.UserID)
		require.Equal(t, "Curry", created.Title)
		require.Equal(t, 30, created.TimeMinutes)
		require.True(t, created.Price.Equal(decimal.RequireFromString("5.25")))
		require.Contains(t, rec.Body.String(), `"id":11`)
		require.Contains(t, rec.Body.String(), `"price":"5.25"`)
	})
}

func TestListRecipesHandler(t *testing.T) {
	e := echo.New()

	t.Run("scopes to caller", func(t *testing.T) {
		t.Cleanup(restore)
		listRecipes = func(_ context.Context, _ database.DB, userID int) ([]model.Recipe, error) {
			require.Equal(t, 2, userID)
			return []model.Recipe{
				{ID: 12, UserID: 2, Title: "Ramen"},
				{ID: 11, UserID: 2, Title: "Curry"},
			}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "", 2)
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Ramen")
		require.Contains(t, rec.Body.String(), "Curry")
	})

	t.Run("empty list yields empty array", func(t *testing.T) {
		t.Cleanup(restore)
		listRecipes = func(context.Context, database.DB, int) ([]model.Recipe, error) { return nil, nil }
		ctx, rec := newCtx(e, http.MethodGet, "", 2)
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestGetRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("other owner's recipe is not found", func(t *testing.T) {
		t.Cleanup(restore)
		getRecipeByID = func(_ context.Context, _ database.DB, userID, recipeID int) (*model.Recipe, error) {
			require.Equal(t, 2, userID)
			require.Equal(t, 8, recipeID)
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newCtx(e, http.MethodGet, "", 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, GetRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "recipe not found")
	})

	t.Run("store failure is not a 404", func(t *testing.T) {
		t.Cleanup(restore)
		getRecipeByID = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return nil, errors.New("connection refused")
		}
		ctx, rec := newCtx(e, http.MethodGet, "", 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, GetRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getRecipeByID = func(_ context.Context, _ database.DB, userID, recipeID int) (*model.Recipe, error) {
			return &model.Recipe{ID: recipeID, UserID: userID, Title: "Curry",
				TimeMinutes: 30, Price: decimal.RequireFromString("5.25")}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "", 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, GetRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"title":"Curry"`)
	})
}

func TestUpdateRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("success replaces all fields", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getRecipeByID = func(_ context.Context, _ database.DB, userID, recipeID int) (*model.Recipe, error) {
			return &model.Recipe{ID: recipeID, UserID: userID, Title: "Old",
				TimeMinutes: 10, Price: decimal.RequireFromString("1.00"), Description: "old"}, nil
		}
		var updated *model.Recipe
		updateRecipe = func(_ context.Context, _ database.DB, r *model.Recipe) error {
			updated = r
			return nil
		}
		ctx, rec := newCtx(e, http.MethodPut,
			`{"title":"New","time_minutes":45,"price":"9.99","description":""}`, 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, UpdateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "New", updated.Title)
		require.Equal(t, 45, updated.TimeMinutes)
		require.True(t, updated.Price.Equal(decimal.RequireFromString("9.99")))
		require.Equal(t, "", updated.Description)
	})
}

func TestPatchRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("only provided fields change", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getRecipeByID = func(_ context.Context, _ database.DB, userID, recipeID int) (*model.Recipe, error) {
			return &model.Recipe{ID: recipeID, UserID: userID, Title: "Curry",
				TimeMinutes: 30, Price: decimal.RequireFromString("5.25"), Description: "Spicy"}, nil
		}
		var updated *model.Recipe
		updateRecipe = func(_ context.Context, _ database.DB, r *model.Recipe) error {
			updated = r
			return nil
		}
		ctx, rec := newCtx(e, http.MethodPatch, `{"time_minutes":20}`, 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, PatchRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Curry", updated.Title)
		require.Equal(t, 20, updated.TimeMinutes)
		require.True(t, updated.Price.Equal(decimal.RequireFromString("5.25")))
		require.Equal(t, "Spicy", updated.Description)
	})

	t.Run("other owner's recipe is not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getRecipeByID = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newCtx(e, http.MethodPatch, `{"title":"X"}`, 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, PatchRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("provided fields obey full update rules", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &requestValidator{v: validator.New()}
		saved := false
		getRecipeByID = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			t.Fatal("lookup must not run for an invalid payload")
			return nil, nil
		}
		updateRecipe = func(context.Context, database.DB, *model.Recipe) error {
			saved = true
			return nil
		}
		for _, body := range []string{
			`{"title":"","time_minutes":-5}`,
			`{"title":""}`,
			`{"time_minutes":0}`,
		} {
			ctx, rec := newCtx(e, http.MethodPatch, body, 2)
			withParam(ctx, "recipe_id", "8")
			require.NoError(t, PatchRecipeHandler(nil)(ctx))
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
		require.False(t, saved)
	})

	t.Run("omitted fields pass validation", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &requestValidator{v: validator.New()}
		getRecipeByID = func(_ context.Context, _ database.DB, userID, recipeID int) (*model.Recipe, error) {
			return &model.Recipe{ID: recipeID, UserID: userID, Title: "Curry",
				TimeMinutes: 30, Price: decimal.RequireFromString("5.25")}, nil
		}
		updateRecipe = func(context.Context, database.DB, *model.Recipe) error { return nil }
		ctx, rec := newCtx(e, http.MethodPatch, `{"description":"Richer stock"}`, 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, PatchRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("other owner's recipe is not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteRecipe = func(context.Context, database.DB, int, int) error { return pgx.ErrNoRows }
		ctx, rec := newCtx(e, http.MethodDelete, "", 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, DeleteRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteRecipe = func(_ context.Context, _ database.DB, userID, recipeID int) error {
			require.Equal(t, 2, userID)
			require.Equal(t, 8, recipeID)
			return nil
		}
		ctx, rec := newCtx(e, http.MethodDelete, "", 2)
		withParam(ctx, "recipe_id", "8")
		require.NoError(t, DeleteRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
