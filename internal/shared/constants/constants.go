package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage              = 1
	DefaultPageSize          = 10
	NotificationPageSize     = 20
	MaxPageSize              = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID       = "user_id"
	ContextKeyUserRole     = "user_role"
	ContextKeyUserVerified = "user_verified"
	ContextKeyRequestID    = "request_id"

	// Database table names
	TableUsers         = "users"
	TableIssues        = "issues"
	TableIssueImages   = "issue_images"
	TableComments      = "comments"
	TableStatusHistory = "issue_status_history"
	TableNotifications = "notifications"
	TableCategories    = "categories"

	// Default history reasons
	HistoryReasonCreated       = "Issue created"
	HistoryReasonStatusUpdated = "Status updated"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
