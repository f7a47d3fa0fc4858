package usecases

import (
	"context"

	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/shared/logger"
)

type mockCategoryRepository struct {
	SaveFunc         func(ctx context.Context, cat *category.Category) error
	UpdateFunc       func(ctx context.Context, cat *category.Category) error
	DeleteFunc       func(ctx context.Context, categoryID uint) error
	GetByIDFunc      func(ctx context.Context, categoryID uint) (*category.Category, error)
	ExistsByIDFunc   func(ctx context.Context, categoryID uint) (bool, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	ListFunc         func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cat)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, cat *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cat)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, categoryID)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ExistsByID(ctx context.Context, categoryID uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, categoryID)
	}
	return true, nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockIssueRepository struct {
	CountByCategoryIDFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, is *issue.Issue) error   { return nil }
func (m *mockIssueRepository) Update(ctx context.Context, is *issue.Issue) error { return nil }
func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	return nil, nil
}
func (m *mockIssueRepository) GetByTicketID(ctx context.Context, ticketID string) (*issue.Issue, error) {
	return nil, nil
}
func (m *mockIssueRepository) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	return false, nil
}
func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	return nil, 0, nil
}
func (m *mockIssueRepository) CountByStatus(ctx context.Context) (map[vo.IssueStatus]int64, error) {
	return map[vo.IssueStatus]int64{}, nil
}
func (m *mockIssueRepository) CountByPriority(ctx context.Context) (map[vo.Priority]int64, error) {
	return map[vo.Priority]int64{}, nil
}
func (m *mockIssueRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryIDFunc != nil {
		return m.CountByCategoryIDFunc(ctx, categoryID)
	}
	return 0, nil
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
