package routes

import (
	"github.com/gin-gonic/gin"

	"nagarsetu/internal/interfaces/http/handlers"
	"nagarsetu/internal/interfaces/http/middleware"
	"nagarsetu/internal/shared/authorization"
)

type CategoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(group *gin.RouterGroup, config *CategoryRouteConfig) {
	categories := group.Group("/categories")
	{
		categories.GET("",
			config.CategoryHandler.List)
		categories.GET("/:id",
			config.CategoryHandler.Get)

		categories.POST("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CategoryHandler.Create)
		categories.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CategoryHandler.Update)
		categories.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.CategoryHandler.Delete)
	}
}
