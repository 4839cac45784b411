// File: internal/handler/auth/token.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"recipe-box/internal/api"
	"recipe-box/internal/cache"
	"recipe-box/internal/database"
	"recipe-box/internal/service"
	"recipe-box/internal/store"
	"recipe-box/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	normalizeEmail      = service.NormalizeEmail
	authenticateUser    = service.AuthenticateUser
	issueAccessToken    = service.IssueAccessToken
	getUserByEmail      = store.GetUserByEmail
	updateUserLastLogin = store.UpdateUserLastLogin
	timeNow             = time.Now
)

// TokenHandler 以 Email/Password 驗證並發行不透明 token
// 任何憑證錯誤一律回應相同的 invalid credentials，不區分帳號不存在與密碼錯誤
// @Summary     Obtain access token
// @Description 使用 Email 與 Password 進行驗證，回傳不透明存取令牌
// @Tags        user
// @Accept      json
// @Produce     json
// @Param       request body api.TokenRequest true "Credentials"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/token [post]
func TokenHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		}

		email, err := normalizeEmail(req.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}

		user, err := getUserByEmail(c.Request().Context(), db, email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		authUser, err := authenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(c.Request().Context(), rdb, *authUser)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		// 登入時間的記錄移出請求路徑
		userID := authUser.ID
		now := timeNow().UTC()
		wp.Submit(func() {
			_ = updateUserLastLogin(context.Background(), db, userID, now)
		})

		return c.JSON(http.StatusOK, api.TokenResponse{Token: token})
	}
}
