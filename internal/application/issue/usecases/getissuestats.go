package usecases

import (
	"context"

	"nagarsetu/internal/application/issue/dto"
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/shared/logger"
)

type GetIssueStatsUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewGetIssueStatsUseCase(
	issueRepo issue.IssueRepository,
	logger logger.Interface,
) *GetIssueStatsUseCase {
	return &GetIssueStatsUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *GetIssueStatsUseCase) Execute(ctx context.Context) (*dto.IssueStatsDTO, error) {
	byStatus, err := uc.issueRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count issues by status", "error", err)
		return nil, err
	}

	byPriority, err := uc.issueRepo.CountByPriority(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count issues by priority", "error", err)
		return nil, err
	}

	stats := &dto.IssueStatsDTO{
		ByStatus:   make(map[string]int64, len(vo.AllIssueStatuses())),
		ByPriority: make(map[string]int64, len(vo.AllPriorities())),
	}

	// Zero-fill so every bucket is present in the response.
	for _, status := range vo.AllIssueStatuses() {
		count := byStatus[status]
		stats.ByStatus[status.String()] = count
		stats.Total += count
	}
	for _, priority := range vo.AllPriorities() {
		stats.ByPriority[priority.String()] = byPriority[priority]
	}

	return stats, nil
}
