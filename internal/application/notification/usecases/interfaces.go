package usecases

import (
	"context"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) error
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type DeleteNotificationExecutor interface {
	Execute(ctx context.Context, cmd DeleteNotificationCommand) error
}
