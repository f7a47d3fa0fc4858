package usecases

import (
	"context"

	"nagarsetu/internal/domain/notification"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type MarkAsReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkAsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAsReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"error", err,
			"notification_id", cmd.NotificationID,
			"user_id", cmd.UserID,
		)
		return err
	}
	return nil
}
