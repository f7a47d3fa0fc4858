package routes

import (
	"github.com/gin-gonic/gin"

	"nagarsetu/internal/interfaces/http/handlers"
	"nagarsetu/internal/interfaces/http/middleware"
	"nagarsetu/internal/shared/authorization"
)

type IssueRouteConfig struct {
	IssueHandler   *handlers.IssueHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupIssueRoutes(group *gin.RouterGroup, config *IssueRouteConfig) {
	issues := group.Group("/issues")
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts

		issues.POST("",
			config.RateLimiter.Limit(),
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireVerified(),
			config.IssueHandler.CreateIssue)
		issues.GET("",
			config.IssueHandler.ListIssues)
		issues.GET("/stats",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.IssueHandler.GetStats)

		// Citizens track their reports by ticket ID without logging in;
		// staff callers additionally see internal comments.
		issues.GET("/ticket/:ticket_id",
			config.AuthMiddleware.OptionalAuth(),
			config.IssueHandler.GetIssueByTicketID)

		issues.PATCH("/:id/status",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireStaff(),
			config.IssueHandler.UpdateIssueStatus)
		issues.POST("/:id/comments",
			config.RateLimiter.Limit(),
			config.AuthMiddleware.RequireAuth(),
			config.IssueHandler.AddComment)
		issues.GET("/:id/comments",
			config.AuthMiddleware.OptionalAuth(),
			config.IssueHandler.ListComments)
		issues.GET("/:id/history",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireStaff(),
			config.IssueHandler.ListStatusHistory)

		issues.GET("/:id",
			config.AuthMiddleware.OptionalAuth(),
			config.IssueHandler.GetIssue)
	}
}
