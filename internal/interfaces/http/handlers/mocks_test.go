package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	categorydto "nagarsetu/internal/application/category/dto"
	categoryusecases "nagarsetu/internal/application/category/usecases"
	issuedto "nagarsetu/internal/application/issue/dto"
	issueusecases "nagarsetu/internal/application/issue/usecases"
	notifusecases "nagarsetu/internal/application/notification/usecases"
)

type mockCreateIssueExecutor struct {
	fn func(ctx context.Context, cmd issueusecases.CreateIssueCommand) (*issueusecases.CreateIssueResult, error)
}

func (m *mockCreateIssueExecutor) Execute(ctx context.Context, cmd issueusecases.CreateIssueCommand) (*issueusecases.CreateIssueResult, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return &issueusecases.CreateIssueResult{}, nil
}

type mockListIssuesExecutor struct {
	fn func(ctx context.Context, query issueusecases.ListIssuesQuery) (*issueusecases.ListIssuesResult, error)
}

func (m *mockListIssuesExecutor) Execute(ctx context.Context, query issueusecases.ListIssuesQuery) (*issueusecases.ListIssuesResult, error) {
	if m.fn != nil {
		return m.fn(ctx, query)
	}
	return &issueusecases.ListIssuesResult{Page: 1, Limit: 10}, nil
}

type mockGetIssueExecutor struct {
	fn func(ctx context.Context, query issueusecases.GetIssueQuery) (*issuedto.IssueDetailDTO, error)
}

func (m *mockGetIssueExecutor) Execute(ctx context.Context, query issueusecases.GetIssueQuery) (*issuedto.IssueDetailDTO, error) {
	if m.fn != nil {
		return m.fn(ctx, query)
	}
	return &issuedto.IssueDetailDTO{}, nil
}

type mockTransitionStatusExecutor struct {
	fn func(ctx context.Context, cmd issueusecases.TransitionStatusCommand) (*issueusecases.TransitionStatusResult, error)
}

func (m *mockTransitionStatusExecutor) Execute(ctx context.Context, cmd issueusecases.TransitionStatusCommand) (*issueusecases.TransitionStatusResult, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return &issueusecases.TransitionStatusResult{}, nil
}

type mockAddCommentExecutor struct {
	fn func(ctx context.Context, cmd issueusecases.AddCommentCommand) (*issueusecases.AddCommentResult, error)
}

func (m *mockAddCommentExecutor) Execute(ctx context.Context, cmd issueusecases.AddCommentCommand) (*issueusecases.AddCommentResult, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return &issueusecases.AddCommentResult{}, nil
}

type mockListCommentsExecutor struct {
	fn func(ctx context.Context, query issueusecases.ListCommentsQuery) ([]issuedto.CommentDTO, error)
}

func (m *mockListCommentsExecutor) Execute(ctx context.Context, query issueusecases.ListCommentsQuery) ([]issuedto.CommentDTO, error) {
	if m.fn != nil {
		return m.fn(ctx, query)
	}
	return nil, nil
}

type mockListStatusHistoryExecutor struct {
	fn func(ctx context.Context, query issueusecases.ListStatusHistoryQuery) ([]issuedto.StatusHistoryDTO, error)
}

func (m *mockListStatusHistoryExecutor) Execute(ctx context.Context, query issueusecases.ListStatusHistoryQuery) ([]issuedto.StatusHistoryDTO, error) {
	if m.fn != nil {
		return m.fn(ctx, query)
	}
	return nil, nil
}

type mockGetIssueStatsExecutor struct {
	fn func(ctx context.Context) (*issuedto.IssueStatsDTO, error)
}

func (m *mockGetIssueStatsExecutor) Execute(ctx context.Context) (*issuedto.IssueStatsDTO, error) {
	if m.fn != nil {
		return m.fn(ctx)
	}
	return &issuedto.IssueStatsDTO{}, nil
}

type mockImageStore struct {
	fn func(c *gin.Context, file *multipart.FileHeader) (string, error)
}

func (m *mockImageStore) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if m.fn != nil {
		return m.fn(c, file)
	}
	return "/uploads/test.jpg", nil
}

type mockListNotificationsExecutor struct {
	fn func(ctx context.Context, query notifusecases.ListNotificationsQuery) (*notifusecases.ListNotificationsResult, error)
}

func (m *mockListNotificationsExecutor) Execute(ctx context.Context, query notifusecases.ListNotificationsQuery) (*notifusecases.ListNotificationsResult, error) {
	if m.fn != nil {
		return m.fn(ctx, query)
	}
	return &notifusecases.ListNotificationsResult{Page: 1, Limit: 20}, nil
}

type mockGetUnreadCountExecutor struct {
	fn func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockGetUnreadCountExecutor) Execute(ctx context.Context, userID uint) (int64, error) {
	if m.fn != nil {
		return m.fn(ctx, userID)
	}
	return 0, nil
}

type mockMarkAsReadExecutor struct {
	fn func(ctx context.Context, cmd notifusecases.MarkAsReadCommand) error
}

func (m *mockMarkAsReadExecutor) Execute(ctx context.Context, cmd notifusecases.MarkAsReadCommand) error {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil
}

type mockMarkAllAsReadExecutor struct {
	fn func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockMarkAllAsReadExecutor) Execute(ctx context.Context, userID uint) (int64, error) {
	if m.fn != nil {
		return m.fn(ctx, userID)
	}
	return 0, nil
}

type mockDeleteNotificationExecutor struct {
	fn func(ctx context.Context, cmd notifusecases.DeleteNotificationCommand) error
}

func (m *mockDeleteNotificationExecutor) Execute(ctx context.Context, cmd notifusecases.DeleteNotificationCommand) error {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil
}

type mockListCategoriesExecutor struct {
	fn func(ctx context.Context) ([]categorydto.CategoryDTO, error)
}

func (m *mockListCategoriesExecutor) Execute(ctx context.Context) ([]categorydto.CategoryDTO, error) {
	if m.fn != nil {
		return m.fn(ctx)
	}
	return nil, nil
}

type mockGetCategoryExecutor struct {
	fn func(ctx context.Context, categoryID uint) (*categorydto.CategoryDTO, error)
}

func (m *mockGetCategoryExecutor) Execute(ctx context.Context, categoryID uint) (*categorydto.CategoryDTO, error) {
	if m.fn != nil {
		return m.fn(ctx, categoryID)
	}
	return &categorydto.CategoryDTO{}, nil
}

type mockCreateCategoryExecutor struct {
	fn func(ctx context.Context, cmd categoryusecases.CreateCategoryCommand) (*categorydto.CategoryDTO, error)
}

func (m *mockCreateCategoryExecutor) Execute(ctx context.Context, cmd categoryusecases.CreateCategoryCommand) (*categorydto.CategoryDTO, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return &categorydto.CategoryDTO{}, nil
}

type mockUpdateCategoryExecutor struct {
	fn func(ctx context.Context, cmd categoryusecases.UpdateCategoryCommand) (*categorydto.CategoryDTO, error)
}

func (m *mockUpdateCategoryExecutor) Execute(ctx context.Context, cmd categoryusecases.UpdateCategoryCommand) (*categorydto.CategoryDTO, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return &categorydto.CategoryDTO{}, nil
}

type mockDeleteCategoryExecutor struct {
	fn func(ctx context.Context, categoryID uint) error
}

func (m *mockDeleteCategoryExecutor) Execute(ctx context.Context, categoryID uint) error {
	if m.fn != nil {
		return m.fn(ctx, categoryID)
	}
	return nil
}
