package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/infrastructure/persistence/mappers"
	"nagarsetu/internal/infrastructure/persistence/models"
	"nagarsetu/internal/shared/db"
)

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewStatusHistoryRepository(gormDB *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     gormDB,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *StatusHistoryRepository) Save(ctx context.Context, h *issue.StatusHistory) error {
	model := r.mapper.HistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}

	return h.SetID(model.ID)
}

func (r *StatusHistoryRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.StatusHistory, error) {
	var historyModels []models.StatusHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find status history: %w", err)
	}

	history := make([]*issue.StatusHistory, len(historyModels))
	for i, model := range historyModels {
		h, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		history[i] = h
	}

	return history, nil
}
