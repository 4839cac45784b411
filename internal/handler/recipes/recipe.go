// File: internal/handler/recipes/recipe.go
package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"recipe-box/internal/api"
	"recipe-box/internal/database"
	"recipe-box/internal/model"
	"recipe-box/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createRecipe  = store.CreateRecipe
	listRecipes   = store.ListRecipes
	getRecipeByID = store.GetRecipeByID
	updateRecipe  = store.UpdateRecipe
	deleteRecipe  = store.DeleteRecipe
)

func newRecipeResponse(r *model.Recipe) api.RecipeResponse {
	return api.RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// @Summary     Create a recipe
// @Description 為當前使用者建立食譜，擁有者一律為呼叫者本人
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       request body api.RecipeRequest true "Create recipe"
// @Success     201 {object} api.RecipeResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes [post]
func CreateRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.RecipeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		}

		recipe, err := createRecipe(c.Request().Context(), db, &model.Recipe{
			UserID:      data.UserID,
			Title:       req.Title,
			TimeMinutes: req.TimeMinutes,
			Price:       req.Price,
			Description: req.Description,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, newRecipeResponse(recipe))
	}
}

// @Summary     List recipes
// @Description 列出當前使用者的食譜，新的在前
// @Tags        recipe
// @Produce     json
// @Success     200 {array} api.RecipeResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes [get]
func ListRecipesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		recipes, err := listRecipes(c.Request().Context(), db, data.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.RecipeResponse, len(recipes))
		for i := range recipes {
			resp[i] = newRecipeResponse(&recipes[i])
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a recipe
// @Description 取得當前使用者的單一食譜，他人食譜一律回 404
// @Tags        recipe
// @Produce     json
// @Param       recipe_id path int true "食譜 ID"
// @Success     200 {object} api.RecipeResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{recipe_id} [get]
func GetRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("recipe_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe ID"})
		}

		recipe, err := getRecipeByID(c.Request().Context(), db, data.UserID, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, newRecipeResponse(recipe))
	}
}

// @Summary     Update a recipe
// @Description 以完整欄位取代當前使用者的食譜內容
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       recipe_id path int true "食譜 ID"
// @Param       request   body api.RecipeRequest true "Update recipe"
// @Success     200 {object} api.RecipeResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{recipe_id} [put]
func UpdateRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("recipe_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe ID"})
		}

		var req api.RecipeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		}

		recipe, err := getRecipeByID(c.Request().Context(), db, data.UserID, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		recipe.Title = req.Title
		recipe.TimeMinutes = req.TimeMinutes
		recipe.Price = req.Price
		recipe.Description = req.Description
		if err := updateRecipe(c.Request().Context(), db, recipe); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, newRecipeResponse(recipe))
	}
}

// @Summary     Patch a recipe
// @Description 局部更新當前使用者的食譜，未帶的欄位保持原值
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       recipe_id path int true "食譜 ID"
// @Param       request   body api.PatchRecipeRequest true "Patch recipe"
// @Success     200 {object} api.RecipeResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{recipe_id} [patch]
func PatchRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("recipe_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe ID"})
		}

		var req api.PatchRecipeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		}

		recipe, err := getRecipeByID(c.Request().Context(), db, data.UserID, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if req.Title != nil {
			recipe.Title = *req.Title
		}
		if req.TimeMinutes != nil {
			recipe.TimeMinutes = *req.TimeMinutes
		}
		if req.Price != nil {
			recipe.Price = *req.Price
		}
		if req.Description != nil {
			recipe.Description = *req.Description
		}
		if err := updateRecipe(c.Request().Context(), db, recipe); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, newRecipeResponse(recipe))
	}
}

// @Summary     Delete a recipe
// @Description 刪除當前使用者的食譜
// @Tags        recipe
// @Produce     json
// @Param       recipe_id path int true "食譜 ID"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{recipe_id} [delete]
func DeleteRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("recipe_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe ID"})
		}

		if err := deleteRecipe(c.Request().Context(), db, data.UserID, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
