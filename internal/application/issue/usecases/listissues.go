package usecases

import (
	"context"

	"nagarsetu/internal/application/issue/dto"
	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/utils"
)

type ListIssuesQuery struct {
	Status     string
	CategoryID *uint
	Priority   string
	City       string
	State      string
	Search     string
	Page       int
	Limit      int
}

type ListIssuesResult struct {
	Items []dto.IssueListItemDTO
	Total int64
	Page  int
	Limit int
}

type ListIssuesUseCase struct {
	issueRepo    issue.IssueRepository
	imageRepo    issue.ImageRepository
	categoryRepo category.CategoryRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewListIssuesUseCase(
	issueRepo issue.IssueRepository,
	imageRepo issue.ImageRepository,
	categoryRepo category.CategoryRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo:    issueRepo,
		imageRepo:    imageRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	uc.logger.Debugw("executing list issues use case", "page", query.Page, "limit", query.Limit)

	filter, err := uc.buildFilter(query)
	if err != nil {
		uc.logger.Errorw("invalid list issues query", "error", err)
		return nil, err
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	items, err := uc.enrich(ctx, issues)
	if err != nil {
		return nil, err
	}

	return &ListIssuesResult{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (uc *ListIssuesUseCase) buildFilter(query ListIssuesQuery) (issue.IssueFilter, error) {
	filter := issue.IssueFilter{
		CategoryID: query.CategoryID,
		City:       query.City,
		State:      query.State,
		Search:     query.Search,
	}

	if query.Status != "" {
		status, err := vo.NewIssueStatus(query.Status)
		if err != nil {
			return issue.IssueFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return issue.IssueFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	pagination := utils.ValidatePagination(query.Page, query.Limit)
	filter.Page = pagination.Page
	filter.Limit = pagination.Limit

	return filter, nil
}

// enrich joins images, category metadata, and user display names onto the
// page of issues with one batch query per concern.
func (uc *ListIssuesUseCase) enrich(ctx context.Context, issues []*issue.Issue) ([]dto.IssueListItemDTO, error) {
	issueIDs := make([]uint, 0, len(issues))
	userIDSet := make(map[uint]struct{})
	for _, is := range issues {
		issueIDs = append(issueIDs, is.ID())
		if is.ReporterID() != nil {
			userIDSet[*is.ReporterID()] = struct{}{}
		}
		if is.AssignedTo() != nil {
			userIDSet[*is.AssignedTo()] = struct{}{}
		}
	}

	imagesByIssue := map[uint][]*issue.Image{}
	if len(issueIDs) > 0 {
		var err error
		imagesByIssue, err = uc.imageRepo.GetByIssueIDs(ctx, issueIDs)
		if err != nil {
			uc.logger.Errorw("failed to load issue images", "error", err)
			return nil, err
		}
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load categories", "error", err)
		return nil, err
	}
	categoryRefs := make(map[uint]dto.CategoryRefDTO, len(categories))
	for _, cat := range categories {
		categoryRefs[cat.ID()] = dto.CategoryRefDTO{
			ID:    cat.ID(),
			Name:  cat.Name(),
			Icon:  cat.Icon(),
			Color: cat.Color(),
		}
	}

	userNames := map[uint]string{}
	if len(userIDSet) > 0 {
		userIDs := make([]uint, 0, len(userIDSet))
		for id := range userIDSet {
			userIDs = append(userIDs, id)
		}
		userNames, err = uc.userRepo.GetNamesByIDs(ctx, userIDs)
		if err != nil {
			uc.logger.Errorw("failed to resolve user names", "error", err)
			return nil, err
		}
	}

	items := make([]dto.IssueListItemDTO, 0, len(issues))
	for _, is := range issues {
		var reporterName, assigneeName string
		if is.ReporterID() != nil {
			reporterName = userNames[*is.ReporterID()]
		}
		if is.AssignedTo() != nil {
			assigneeName = userNames[*is.AssignedTo()]
		}
		items = append(items, dto.ToIssueListItemDTO(
			is,
			categoryRefs[is.CategoryID()],
			imagesByIssue[is.ID()],
			reporterName,
			assigneeName,
		))
	}
	return items, nil
}
