package usecases

import (
	"context"

	"nagarsetu/internal/application/notification/dto"
	"nagarsetu/internal/domain/notification"
	"nagarsetu/internal/shared/constants"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID uint
	Page   int
	Limit  int
}

type ListNotificationsResult struct {
	Items []dto.NotificationDTO
	Total int64
	Page  int
	Limit int
}

// IssueTitleResolver resolves issue titles in batch for list enrichment.
type IssueTitleResolver interface {
	GetTitlesByIDs(ctx context.Context, issueIDs []uint) (map[uint]string, error)
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	issueTitles      IssueTitleResolver
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	issueTitles IssueTitleResolver,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		issueTitles:      issueTitles,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = constants.NotificationPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	notifications, total, err := uc.notificationRepo.ListByUserID(ctx, query.UserID, page, limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	items := dto.ToNotificationDTOs(notifications)
	uc.attachIssueTitles(ctx, items)

	return &ListNotificationsResult{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// attachIssueTitles joins issue titles onto the page. Resolution failures
// degrade the response rather than fail it.
func (uc *ListNotificationsUseCase) attachIssueTitles(ctx context.Context, items []dto.NotificationDTO) {
	issueIDs := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.IssueID != nil && !seen[*item.IssueID] {
			seen[*item.IssueID] = true
			issueIDs = append(issueIDs, *item.IssueID)
		}
	}
	if len(issueIDs) == 0 {
		return
	}

	titles, err := uc.issueTitles.GetTitlesByIDs(ctx, issueIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve issue titles for notifications", "error", err)
		return
	}

	for i := range items {
		if items[i].IssueID != nil {
			items[i].IssueTitle = titles[*items[i].IssueID]
		}
	}
}
