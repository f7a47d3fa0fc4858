package usecases

import (
	"context"

	"nagarsetu/internal/domain/notification"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.NewValidationError("user ID is required")
	}

	updated, err := uc.notificationRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "error", err, "user_id", userID)
		return 0, err
	}

	uc.logger.Infow("notifications marked as read", "user_id", userID, "updated", updated)
	return updated, nil
}
