package usecases

import (
	"context"

	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/shared/logger"
)

type mockIssueRepository struct {
	SaveFunc              func(ctx context.Context, is *issue.Issue) error
	UpdateFunc            func(ctx context.Context, is *issue.Issue) error
	GetByIDFunc           func(ctx context.Context, issueID uint) (*issue.Issue, error)
	GetByTicketIDFunc     func(ctx context.Context, ticketID string) (*issue.Issue, error)
	ExistsByTicketIDFunc  func(ctx context.Context, ticketID string) (bool, error)
	ListFunc              func(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error)
	CountByStatusFunc     func(ctx context.Context) (map[vo.IssueStatus]int64, error)
	CountByPriorityFunc   func(ctx context.Context) (map[vo.Priority]int64, error)
	CountByCategoryIDFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, is *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, is)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, is *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, is)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetByTicketID(ctx context.Context, ticketID string) (*issue.Issue, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockIssueRepository) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	if m.ExistsByTicketIDFunc != nil {
		return m.ExistsByTicketIDFunc(ctx, ticketID)
	}
	return false, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) CountByStatus(ctx context.Context) (map[vo.IssueStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.IssueStatus]int64{}, nil
}

func (m *mockIssueRepository) CountByPriority(ctx context.Context) (map[vo.Priority]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx)
	}
	return map[vo.Priority]int64{}, nil
}

func (m *mockIssueRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryIDFunc != nil {
		return m.CountByCategoryIDFunc(ctx, categoryID)
	}
	return 0, nil
}

type mockImageRepository struct {
	SaveBatchFunc     func(ctx context.Context, images []*issue.Image) error
	GetByIssueIDFunc  func(ctx context.Context, issueID uint) ([]*issue.Image, error)
	GetByIssueIDsFunc func(ctx context.Context, issueIDs []uint) (map[uint][]*issue.Image, error)
}

func (m *mockImageRepository) SaveBatch(ctx context.Context, images []*issue.Image) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, images)
	}
	return nil
}

func (m *mockImageRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Image, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockImageRepository) GetByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*issue.Image, error) {
	if m.GetByIssueIDsFunc != nil {
		return m.GetByIssueIDsFunc(ctx, issueIDs)
	}
	return map[uint][]*issue.Image{}, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, comment *issue.Comment) error
	GetByIssueIDFunc func(ctx context.Context, issueID uint, includeInternal bool) ([]*issue.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *issue.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByIssueID(ctx context.Context, issueID uint, includeInternal bool) ([]*issue.Comment, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID, includeInternal)
	}
	return nil, nil
}

type mockStatusHistoryRepository struct {
	SaveFunc         func(ctx context.Context, history *issue.StatusHistory) error
	GetByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.StatusHistory, error)
}

func (m *mockStatusHistoryRepository) Save(ctx context.Context, history *issue.StatusHistory) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, history)
	}
	return nil
}

func (m *mockStatusHistoryRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.StatusHistory, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

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

type mockTicketIDGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockTicketIDGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "NAGARSETU-250101-00010000", nil
}

// mockTransactionManager runs the function directly with the given context.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockReporterNotifier struct {
	IssueStatusChangedFunc func(ctx context.Context, is *issue.Issue, oldStatus, newStatus vo.IssueStatus)
	CommentAddedFunc       func(ctx context.Context, is *issue.Issue, commentAuthorID uint)
}

func (m *mockReporterNotifier) IssueStatusChanged(ctx context.Context, is *issue.Issue, oldStatus, newStatus vo.IssueStatus) {
	if m.IssueStatusChangedFunc != nil {
		m.IssueStatusChangedFunc(ctx, is, oldStatus, newStatus)
	}
}

func (m *mockReporterNotifier) CommentAdded(ctx context.Context, is *issue.Issue, commentAuthorID uint) {
	if m.CommentAddedFunc != nil {
		m.CommentAddedFunc(ctx, is, commentAuthorID)
	}
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
