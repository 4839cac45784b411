package router

import (
	"net/http"
	"testing"

	"recipe-box/internal/cache"
	"recipe-box/internal/database"
	"recipe-box/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/user/create",
		http.MethodPost + " /api/user/token",
		http.MethodGet + " /api/user/me",
		http.MethodPut + " /api/user/me",
		http.MethodPatch + " /api/user/me/password",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users/:user_id",
		http.MethodPut + " /api/users/:user_id",
		http.MethodDelete + " /api/users/:user_id",
		http.MethodGet + " /api/recipe/tags",
		http.MethodPost + " /api/recipe/tags",
		http.MethodGet + " /api/recipe/tags/:tag_id",
		http.MethodPut + " /api/recipe/tags/:tag_id",
		http.MethodDelete + " /api/recipe/tags/:tag_id",
		http.MethodGet + " /api/recipe/recipes",
		http.MethodPost + " /api/recipe/recipes",
		http.MethodGet + " /api/recipe/recipes/:recipe_id",
		http.MethodPut + " /api/recipe/recipes/:recipe_id",
		http.MethodPatch + " /api/recipe/recipes/:recipe_id",
		http.MethodDelete + " /api/recipe/recipes/:recipe_id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
