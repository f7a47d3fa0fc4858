package usecases

import (
	"context"

	"nagarsetu/internal/application/issue/dto"
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
)

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDetailDTO, error)
}

type TransitionStatusExecutor interface {
	Execute(ctx context.Context, cmd TransitionStatusCommand) (*TransitionStatusResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type ListStatusHistoryExecutor interface {
	Execute(ctx context.Context, query ListStatusHistoryQuery) ([]dto.StatusHistoryDTO, error)
}

type GetIssueStatsExecutor interface {
	Execute(ctx context.Context) (*dto.IssueStatsDTO, error)
}

// TransactionManager runs a function inside a storage transaction. The
// context passed to fn carries the transaction for repository calls.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReporterNotifier fans out notifications about issue activity.
// Implementations must not block the caller; delivery is best effort and
// happens after the triggering write has been committed.
type ReporterNotifier interface {
	IssueStatusChanged(ctx context.Context, is *issue.Issue, oldStatus, newStatus vo.IssueStatus)
	CommentAdded(ctx context.Context, is *issue.Issue, commentAuthorID uint)
}
