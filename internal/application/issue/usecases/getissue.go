package usecases

import (
	"context"

	"nagarsetu/internal/application/issue/dto"
	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/services/markdown"
)

// GetIssueQuery fetches a single issue by numeric ID or by ticket ID.
// Exactly one of the two must be set. IncludeInternal exposes staff-only
// comments and is granted by the caller based on the requester's role.
type GetIssueQuery struct {
	IssueID         uint
	TicketID        string
	IncludeInternal bool
}

type GetIssueUseCase struct {
	issueRepo    issue.IssueRepository
	imageRepo    issue.ImageRepository
	commentRepo  issue.CommentRepository
	categoryRepo category.CategoryRepository
	userRepo     user.UserRepository
	markdownSvc  markdown.MarkdownService
	logger       logger.Interface
}

func NewGetIssueUseCase(
	issueRepo issue.IssueRepository,
	imageRepo issue.ImageRepository,
	commentRepo issue.CommentRepository,
	categoryRepo category.CategoryRepository,
	userRepo user.UserRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo:    issueRepo,
		imageRepo:    imageRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		markdownSvc:  markdownSvc,
		logger:       logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDetailDTO, error) {
	is, err := uc.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	images, err := uc.imageRepo.GetByIssueID(ctx, is.ID())
	if err != nil {
		uc.logger.Errorw("failed to load issue images", "error", err, "issue_id", is.ID())
		return nil, err
	}

	comments, err := uc.commentRepo.GetByIssueID(ctx, is.ID(), query.IncludeInternal)
	if err != nil {
		uc.logger.Errorw("failed to load issue comments", "error", err, "issue_id", is.ID())
		return nil, err
	}

	categoryRef, err := uc.loadCategoryRef(ctx, is.CategoryID())
	if err != nil {
		return nil, err
	}

	userNames, err := uc.resolveUserNames(ctx, is, comments)
	if err != nil {
		return nil, err
	}

	var reporterName, assigneeName string
	if is.ReporterID() != nil {
		reporterName = userNames[*is.ReporterID()]
	}
	if is.AssignedTo() != nil {
		assigneeName = userNames[*is.AssignedTo()]
	}

	commentDTOs := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		rendered, err := uc.markdownSvc.ToHTMLSanitized(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment", "error", err, "comment_id", c.ID())
			rendered = ""
		}
		commentDTOs = append(commentDTOs, dto.ToCommentDTO(c, userNames[c.UserID()], rendered))
	}

	detail := &dto.IssueDetailDTO{
		IssueListItemDTO: dto.ToIssueListItemDTO(is, categoryRef, images, reporterName, assigneeName),
		ResolutionNotes:  is.ResolutionNotes(),
		Comments:         commentDTOs,
	}
	return detail, nil
}

func (uc *GetIssueUseCase) fetch(ctx context.Context, query GetIssueQuery) (*issue.Issue, error) {
	switch {
	case query.TicketID != "":
		return uc.issueRepo.GetByTicketID(ctx, query.TicketID)
	case query.IssueID != 0:
		return uc.issueRepo.GetByID(ctx, query.IssueID)
	default:
		return nil, errors.NewValidationError("issue ID or ticket ID is required")
	}
}

func (uc *GetIssueUseCase) loadCategoryRef(ctx context.Context, categoryID uint) (dto.CategoryRefDTO, error) {
	cat, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		// The category may have been deleted after the issue was filed;
		// the issue itself is still valid.
		if errors.IsNotFoundError(err) {
			return dto.CategoryRefDTO{ID: categoryID}, nil
		}
		uc.logger.Errorw("failed to load category", "error", err, "category_id", categoryID)
		return dto.CategoryRefDTO{}, err
	}
	return dto.CategoryRefDTO{
		ID:    cat.ID(),
		Name:  cat.Name(),
		Icon:  cat.Icon(),
		Color: cat.Color(),
	}, nil
}

func (uc *GetIssueUseCase) resolveUserNames(ctx context.Context, is *issue.Issue, comments []*issue.Comment) (map[uint]string, error) {
	idSet := make(map[uint]struct{})
	if is.ReporterID() != nil {
		idSet[*is.ReporterID()] = struct{}{}
	}
	if is.AssignedTo() != nil {
		idSet[*is.AssignedTo()] = struct{}{}
	}
	for _, c := range comments {
		idSet[c.UserID()] = struct{}{}
	}

	if len(idSet) == 0 {
		return map[uint]string{}, nil
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names, err := uc.userRepo.GetNamesByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve user names", "error", err)
		return nil, err
	}
	return names, nil
}
