package handlers

import (
	"github.com/gin-gonic/gin"

	notifusecases "nagarsetu/internal/application/notification/usecases"
	"nagarsetu/internal/shared/constants"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/utils"
)

type NotificationHandler struct {
	listNotifications  notifusecases.ListNotificationsExecutor
	getUnreadCount     notifusecases.GetUnreadCountExecutor
	markAsRead         notifusecases.MarkAsReadExecutor
	markAllAsRead      notifusecases.MarkAllAsReadExecutor
	deleteNotification notifusecases.DeleteNotificationExecutor
	logger             logger.Interface
}

func NewNotificationHandler(
	listNotifications notifusecases.ListNotificationsExecutor,
	getUnreadCount notifusecases.GetUnreadCountExecutor,
	markAsRead notifusecases.MarkAsReadExecutor,
	markAllAsRead notifusecases.MarkAllAsReadExecutor,
	deleteNotification notifusecases.DeleteNotificationExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotifications:  listNotifications,
		getUnreadCount:     getUnreadCount,
		markAsRead:         markAsRead,
		markAllAsRead:      markAllAsRead,
		deleteNotification: deleteNotification,
		logger:             logger,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	pagination := utils.ParsePaginationWithLimits(c, constants.NotificationPageSize, constants.MaxPageSize)

	result, err := h.listNotifications.Execute(c.Request.Context(), notifusecases.ListNotificationsQuery{
		UserID: userID,
		Page:   pagination.Page,
		Limit:  pagination.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Limit)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	count, err := h.getUnreadCount.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markAsRead.Execute(c.Request.Context(), notifusecases.MarkAsReadCommand{
		NotificationID: notificationID,
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	updated, err := h.markAllAsRead.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "All notifications marked as read", gin.H{"updated": updated})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteNotification.Execute(c.Request.Context(), notifusecases.DeleteNotificationCommand{
		NotificationID: notificationID,
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
