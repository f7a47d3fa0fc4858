package usecases

import (
	"context"

	"nagarsetu/internal/domain/notification"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type DeleteNotificationCommand struct {
	NotificationID uint
	UserID         uint
}

type DeleteNotificationUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, cmd DeleteNotificationCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.Delete(ctx, cmd.NotificationID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete notification",
			"error", err,
			"notification_id", cmd.NotificationID,
			"user_id", cmd.UserID,
		)
		return err
	}

	uc.logger.Infow("notification deleted", "notification_id", cmd.NotificationID, "user_id", cmd.UserID)
	return nil
}
