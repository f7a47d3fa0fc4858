package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	ListByUserID(ctx context.Context, userID uint, page, limit int) ([]*Notification, int64, error)
	CountUnreadByUserID(ctx context.Context, userID uint) (int64, error)
	// MarkAsRead flips the read flag for the user's notification.
	// Ownership is part of the predicate; zero affected rows means the
	// notification does not exist for this user.
	MarkAsRead(ctx context.Context, notificationID, userID uint) error
	MarkAllAsRead(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, notificationID, userID uint) error
}
