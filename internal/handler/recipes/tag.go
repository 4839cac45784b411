// File: internal/handler/recipes/tag.go
package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"recipe-box/internal/api"
	"recipe-box/internal/database"
	"recipe-box/internal/middleware"
	"recipe-box/internal/model"
	"recipe-box/internal/service"
	"recipe-box/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createTag  = store.CreateTag
	listTags   = store.ListTags
	getTagByID = store.GetTagByID
	updateTag  = store.UpdateTag
	deleteTag  = store.DeleteTag
)

func currentTokenData(c echo.Context) (*service.TokenData, bool) {
	data, ok := c.Get(middleware.ContextUserKey).(*service.TokenData)
	if !ok || data.UserID == 0 {
		return nil, false
	}
	return data, true
}

func newTagResponse(t *model.Tag) api.TagResponse {
	return api.TagResponse{ID: t.ID, Name: t.Name}
}

// @Summary     Create a tag
// @Description 為當前使用者建立標籤，擁有者一律為呼叫者本人
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       request body api.TagRequest true "Create tag"
// @Success     201 {object} api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags [post]
func CreateTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.TagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		}

		tag, err := createTag(c.Request().Context(), db, &model.Tag{
			UserID: data.UserID,
			Name:   req.Name,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, newTagResponse(tag))
	}
}

// @Summary     List tags
// @Description 列出當前使用者的標籤，依名稱遞減排序
// @Tags        recipe
// @Produce     json
// @Success     200 {array} api.TagResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags [get]
func ListTagsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		tags, err := listTags(c.Request().Context(), db, data.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.TagResponse, len(tags))
		for i := range tags {
			resp[i] = newTagResponse(&tags[i])
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a tag
// @Description 取得當前使用者的單一標籤，他人標籤一律回 404
// @Tags        recipe
// @Produce     json
// @Param       tag_id path int true "標籤 ID"
// @Success     200 {object} api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags/{tag_id} [get]
func GetTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("tag_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tag ID"})
		}

		tag, err := getTagByID(c.Request().Context(), db, data.UserID, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, newTagResponse(tag))
	}
}

// @Summary     Update a tag
// @Description 更新當前使用者的標籤名稱
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       tag_id  path int true "標籤 ID"
// @Param       request body api.TagRequest true "Update tag"
// @Success     200 {object} api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags/{tag_id} [put]
func UpdateTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("tag_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tag ID"})
		}

		var req api.TagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		}

		tag := &model.Tag{ID: id, UserID: data.UserID, Name: req.Name}
		if err := updateTag(c.Request().Context(), db, tag); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, newTagResponse(tag))
	}
}

// @Summary     Delete a tag
// @Description 刪除當前使用者的標籤
// @Tags        recipe
// @Produce     json
// @Param       tag_id path int true "標籤 ID"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags/{tag_id} [delete]
func DeleteTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, ok := currentTokenData(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("tag_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tag ID"})
		}

		if err := deleteTag(c.Request().Context(), db, data.UserID, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
