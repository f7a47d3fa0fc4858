package usecases

import (
	"context"

	"nagarsetu/internal/application/issue/dto"
	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type ListStatusHistoryQuery struct {
	IssueID uint
}

type ListStatusHistoryUseCase struct {
	issueRepo   issue.IssueRepository
	historyRepo issue.StatusHistoryRepository
	logger      logger.Interface
}

func NewListStatusHistoryUseCase(
	issueRepo issue.IssueRepository,
	historyRepo issue.StatusHistoryRepository,
	logger logger.Interface,
) *ListStatusHistoryUseCase {
	return &ListStatusHistoryUseCase{
		issueRepo:   issueRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListStatusHistoryUseCase) Execute(ctx context.Context, query ListStatusHistoryQuery) ([]dto.StatusHistoryDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	if _, err := uc.issueRepo.GetByID(ctx, query.IssueID); err != nil {
		return nil, err
	}

	history, err := uc.historyRepo.GetByIssueID(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list status history", "error", err, "issue_id", query.IssueID)
		return nil, err
	}

	dtos := make([]dto.StatusHistoryDTO, 0, len(history))
	for _, h := range history {
		dtos = append(dtos, dto.ToStatusHistoryDTO(h))
	}
	return dtos, nil
}
