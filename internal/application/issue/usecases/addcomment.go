package usecases

import (
	"context"
	"time"

	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	IssueID    uint
	UserID     uint
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID uint
	IssueID   uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	notifier    ReporterNotifier
	markdownSvc markdown.MarkdownService
	logger      logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	notifier ReporterNotifier,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"issue_id", cmd.IssueID,
		"user_id", cmd.UserID,
		"is_internal", cmd.IsInternal,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add comment command", "error", err)
		return nil, err
	}

	is, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	content := uc.markdownSvc.SanitizePlain(cmd.Content)
	if len(content) == 0 {
		return nil, errors.NewValidationError("content cannot be empty")
	}

	comment, err := issue.NewComment(is.ID(), cmd.UserID, content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "issue_id", cmd.IssueID)
		return nil, err
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "issue_id", is.ID())

	// Internal notes stay invisible to citizens, so they never notify.
	if uc.notifier != nil && !cmd.IsInternal && is.ReporterID() != nil {
		uc.notifier.CommentAdded(ctx, is, cmd.UserID)
	}

	return &AddCommentResult{
		CommentID: comment.ID(),
		IssueID:   is.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}

func (uc *AddCommentUseCase) validateCommand(cmd AddCommentCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}

	if len(cmd.Content) > 5000 {
		return errors.NewValidationError("content exceeds maximum length of 5000 characters")
	}

	return nil
}
