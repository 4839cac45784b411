package middleware

import (
	"net/http"
	"strings"

	"recipe-box/internal/cache"
	"recipe-box/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// validateAccessToken 測試可覆寫此變數
var validateAccessToken = service.ValidateAccessToken

func extractTokenData(c echo.Context, rdb cache.Cache) (*service.TokenData, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	data, err := validateAccessToken(c.Request().Context(), rdb, parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return data, nil
}

// RequireAuth 解析 bearer token 並將帳號資訊放入 context
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data, err := extractTokenData(c, rdb)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, data)
			return next(c)
		}
	}
}

// RequireStaff 在 RequireAuth 之上要求 is_staff 旗標
func RequireStaff(rdb cache.Cache) echo.MiddlewareFunc {
	auth := RequireAuth(rdb)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			data := c.Get(ContextUserKey).(*service.TokenData)
			if !data.IsStaff {
				return echo.NewHTTPError(http.StatusForbidden, "staff privileges required")
			}
			return next(c)
		})
	}
}
