package routes

import (
	"github.com/gin-gonic/gin"

	"nagarsetu/internal/interfaces/http/handlers"
	"nagarsetu/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(group *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := group.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("",
			config.NotificationHandler.List)
		notifications.GET("/unread-count",
			config.NotificationHandler.UnreadCount)
		notifications.PATCH("/read-all",
			config.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read",
			config.NotificationHandler.MarkAsRead)
		notifications.DELETE("/:id",
			config.NotificationHandler.Delete)
	}
}
