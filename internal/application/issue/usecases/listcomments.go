package usecases

import (
	"context"

	"nagarsetu/internal/application/issue/dto"
	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/services/markdown"
)

// ListCommentsQuery returns the comments on an issue in chronological order.
// IncludeInternal is granted by the caller based on the requester's role.
type ListCommentsQuery struct {
	IssueID         uint
	IncludeInternal bool
}

type ListCommentsUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	userRepo    user.UserRepository
	markdownSvc markdown.MarkdownService
	logger      logger.Interface
}

func NewListCommentsUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	userRepo user.UserRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	// Distinguishes a missing issue from an issue with no comments.
	if _, err := uc.issueRepo.GetByID(ctx, query.IssueID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByIssueID(ctx, query.IssueID, query.IncludeInternal)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "issue_id", query.IssueID)
		return nil, err
	}

	userNames := map[uint]string{}
	if len(comments) > 0 {
		idSet := make(map[uint]struct{})
		for _, c := range comments {
			idSet[c.UserID()] = struct{}{}
		}
		ids := make([]uint, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		userNames, err = uc.userRepo.GetNamesByIDs(ctx, ids)
		if err != nil {
			uc.logger.Errorw("failed to resolve commenter names", "error", err)
			return nil, err
		}
	}

	dtos := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		rendered, err := uc.markdownSvc.ToHTMLSanitized(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment", "error", err, "comment_id", c.ID())
			rendered = ""
		}
		dtos = append(dtos, dto.ToCommentDTO(c, userNames[c.UserID()], rendered))
	}
	return dtos, nil
}
