package usecases

import (
	"context"

	"nagarsetu/internal/domain/notification"
	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc                func(ctx context.Context, n *notification.Notification) error
	ListByUserIDFunc        func(ctx context.Context, userID uint, page, limit int) ([]*notification.Notification, int64, error)
	CountUnreadByUserIDFunc func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc          func(ctx context.Context, notificationID, userID uint) error
	MarkAllAsReadFunc       func(ctx context.Context, userID uint) (int64, error)
	DeleteFunc              func(ctx context.Context, notificationID, userID uint) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, page, limit int) ([]*notification.Notification, int64, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, page, limit)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadByUserIDFunc != nil {
		return m.CountUnreadByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, notificationID, userID uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, notificationID, userID)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, notificationID, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, notificationID, userID)
	}
	return nil
}

type mockIssueExistenceChecker struct {
	ExistsByIDFunc func(ctx context.Context, issueID uint) (bool, error)
}

func (m *mockIssueExistenceChecker) ExistsByID(ctx context.Context, issueID uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, issueID)
	}
	return true, nil
}

type mockIssueTitleResolver struct {
	GetTitlesByIDsFunc func(ctx context.Context, issueIDs []uint) (map[uint]string, error)
}

func (m *mockIssueTitleResolver) GetTitlesByIDs(ctx context.Context, issueIDs []uint) (map[uint]string, error) {
	if m.GetTitlesByIDsFunc != nil {
		return m.GetTitlesByIDsFunc(ctx, issueIDs)
	}
	return map[uint]string{}, nil
}

type mockUserRepository struct {
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetNamesByIDsFunc func(ctx context.Context, userIDs []uint) (map[uint]string, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetNamesByIDs(ctx context.Context, userIDs []uint) (map[uint]string, error) {
	if m.GetNamesByIDsFunc != nil {
		return m.GetNamesByIDsFunc(ctx, userIDs)
	}
	return map[uint]string{}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
