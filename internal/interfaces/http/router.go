package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	categoryusecases "nagarsetu/internal/application/category/usecases"
	issueusecases "nagarsetu/internal/application/issue/usecases"
	notifusecases "nagarsetu/internal/application/notification/usecases"
	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/infrastructure/auth"
	"nagarsetu/internal/infrastructure/config"
	"nagarsetu/internal/infrastructure/repository"
	"nagarsetu/internal/infrastructure/storage"
	"nagarsetu/internal/interfaces/http/handlers"
	"nagarsetu/internal/interfaces/http/middleware"
	"nagarsetu/internal/interfaces/http/routes"
	"nagarsetu/internal/shared/db"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/services/markdown"
	"nagarsetu/internal/shared/utils"
)

// Router assembles the HTTP surface: handlers, middleware, and routes.
type Router struct {
	engine              *gin.Engine
	issueHandler        *handlers.IssueHandler
	notificationHandler *handlers.NotificationHandler
	categoryHandler     *handlers.CategoryHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
	uploadDir           string
	allowedOrigins      []string
	logger              logger.Interface
}

// NewRouter wires repositories, use cases, and handlers against the given
// database and configuration.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	issueRepo := repository.NewIssueRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	historyRepo := repository.NewStatusHistoryRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	markdownSvc := markdown.NewMarkdownService()
	ticketGen := issue.NewFormattedTicketIDGenerator()

	notifier := notifusecases.NewReporterNotifierService(notificationRepo, issueRepo, userRepo, log)

	createIssueUC := issueusecases.NewCreateIssueUseCase(
		issueRepo, imageRepo, historyRepo, categoryRepo,
		ticketGen, txManager, markdownSvc, cfg.Upload.MaxImages, log)
	listIssuesUC := issueusecases.NewListIssuesUseCase(issueRepo, imageRepo, categoryRepo, userRepo, log)
	getIssueUC := issueusecases.NewGetIssueUseCase(issueRepo, imageRepo, commentRepo, categoryRepo, userRepo, markdownSvc, log)
	transitionStatusUC := issueusecases.NewTransitionStatusUseCase(
		issueRepo, historyRepo, txManager, notifier, markdownSvc,
		cfg.Issue.StrictTransitions, log)
	addCommentUC := issueusecases.NewAddCommentUseCase(issueRepo, commentRepo, notifier, markdownSvc, log)
	listCommentsUC := issueusecases.NewListCommentsUseCase(issueRepo, commentRepo, userRepo, markdownSvc, log)
	listHistoryUC := issueusecases.NewListStatusHistoryUseCase(issueRepo, historyRepo, log)
	issueStatsUC := issueusecases.NewGetIssueStatsUseCase(issueRepo, log)

	listNotificationsUC := notifusecases.NewListNotificationsUseCase(notificationRepo, issueRepo, log)
	unreadCountUC := notifusecases.NewGetUnreadCountUseCase(notificationRepo, log)
	markAsReadUC := notifusecases.NewMarkAsReadUseCase(notificationRepo, log)
	markAllAsReadUC := notifusecases.NewMarkAllAsReadUseCase(notificationRepo, log)
	deleteNotificationUC := notifusecases.NewDeleteNotificationUseCase(notificationRepo, log)

	listCategoriesUC := categoryusecases.NewListCategoriesUseCase(categoryRepo, log)
	getCategoryUC := categoryusecases.NewGetCategoryUseCase(categoryRepo, log)
	createCategoryUC := categoryusecases.NewCreateCategoryUseCase(categoryRepo, log)
	updateCategoryUC := categoryusecases.NewUpdateCategoryUseCase(categoryRepo, log)
	deleteCategoryUC := categoryusecases.NewDeleteCategoryUseCase(categoryRepo, issueRepo, log)

	imageStore, err := storage.NewLocalImageStore(cfg.Upload.Dir, cfg.Server.BaseURL, cfg.Upload.MaxImageSize)
	if err != nil {
		return nil, err
	}

	issueHandler := handlers.NewIssueHandler(
		createIssueUC, listIssuesUC, getIssueUC, transitionStatusUC,
		addCommentUC, listCommentsUC, listHistoryUC, issueStatsUC,
		imageStore, cfg.Upload.MaxImages, log)
	notificationHandler := handlers.NewNotificationHandler(
		listNotificationsUC, unreadCountUC, markAsReadUC, markAllAsReadUC,
		deleteNotificationUC, log)
	categoryHandler := handlers.NewCategoryHandler(
		listCategoriesUC, getCategoryUC, createCategoryUC, updateCategoryUC,
		deleteCategoryUC, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 60, 1*time.Minute)

	return &Router{
		engine:              engine,
		issueHandler:        issueHandler,
		notificationHandler: notificationHandler,
		categoryHandler:     categoryHandler,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		uploadDir:           cfg.Upload.Dir,
		allowedOrigins:      cfg.Server.AllowedOrigins,
		logger:              log,
	}, nil
}

// SetupRoutes configures global middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	// Uploaded issue photos are served straight from disk.
	r.engine.Static("/uploads", r.uploadDir)

	v1 := r.engine.Group("/api/v1")

	routes.SetupIssueRoutes(v1, &routes.IssueRouteConfig{
		IssueHandler:   r.issueHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupNotificationRoutes(v1, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupCategoryRoutes(v1, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
