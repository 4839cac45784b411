// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"recipe-box/internal/cache"
	"recipe-box/internal/database"
	"recipe-box/internal/handler"
	"recipe-box/internal/handler/auth"
	"recipe-box/internal/handler/recipes"
	"recipe-box/internal/handler/users"
	"recipe-box/internal/middleware"
	"recipe-box/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth(rdb))

	// 帳號註冊與 token 發行
	api.POST("/user/create", users.RegisterHandler(db))
	api.POST("/user/token", auth.TokenHandler(db, rdb, wp))

	// 取得、更新當前使用者個人資料
	apiUserMe := api.Group("/user/me", middleware.RequireAuth(rdb))
	apiUserMe.GET("", users.GetMyUserHandler(db))
	apiUserMe.PUT("", users.UpdateMyUserHandler(db))
	apiUserMe.PATCH("/password", users.UpdateMyUserPasswordHandler(db))

	// 管理員專屬 Users CRUD
	apiUsers := api.Group("/users", middleware.RequireStaff(rdb))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("/:user_id", users.GetUserHandler(db))
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db))

	// 標籤與食譜 CRUD，一律以呼叫者為範圍
	apiRecipe := api.Group("/recipe", middleware.RequireAuth(rdb))
	apiRecipe.GET("/tags", recipes.ListTagsHandler(db))
	apiRecipe.POST("/tags", recipes.CreateTagHandler(db))
	apiRecipe.GET("/tags/:tag_id", recipes.GetTagHandler(db))
	apiRecipe.PUT("/tags/:tag_id", recipes.UpdateTagHandler(db))
	apiRecipe.DELETE("/tags/:tag_id", recipes.DeleteTagHandler(db))
	apiRecipe.GET("/recipes", recipes.ListRecipesHandler(db))
	apiRecipe.POST("/recipes", recipes.CreateRecipeHandler(db))
	apiRecipe.GET("/recipes/:recipe_id", recipes.GetRecipeHandler(db))
	apiRecipe.PUT("/recipes/:recipe_id", recipes.UpdateRecipeHandler(db))
	apiRecipe.PATCH("/recipes/:recipe_id", recipes.PatchRecipeHandler(db))
	apiRecipe.DELETE("/recipes/:recipe_id", recipes.DeleteRecipeHandler(db))
}
