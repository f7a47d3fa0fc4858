package usecases

import (
	"context"

	"nagarsetu/internal/domain/notification"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewGetUnreadCountUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.NewValidationError("user ID is required")
	}

	count, err := uc.notificationRepo.CountUnreadByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", userID)
		return 0, err
	}
	return count, nil
}
