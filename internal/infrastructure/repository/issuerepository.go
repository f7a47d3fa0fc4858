package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/infrastructure/persistence/mappers"
	"nagarsetu/internal/infrastructure/persistence/models"
	"nagarsetu/internal/shared/db"
	"nagarsetu/internal/shared/errors"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(gormDB *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     gormDB,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, is *issue.Issue) error {
	model := r.mapper.ToModel(is)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("issue with this ticket ID already exists")
		}
		return fmt.Errorf("failed to save issue: %w", err)
	}

	return is.SetID(model.ID)
}

func (r *IssueRepository) Update(ctx context.Context, is *issue.Issue) error {
	model := r.mapper.ToModel(is)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select("status", "assigned_to", "resolution_notes", "resolved_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, issueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) GetByTicketID(ctx context.Context, ticketID string) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.IssueModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket ID existence: %w", err)
	}

	return count > 0, nil
}

// List pushes every filter down to the database in a single parameterized
// query so filtering and counting stay consistent under concurrent writes.
func (r *IssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+escapeLike(filter.City)+"%")
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ?", "%"+escapeLike(filter.State)+"%")
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var issueModels []models.IssueModel
	if err := query.Find(&issueModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, len(issueModels))
	for i, model := range issueModels {
		is, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		issues[i] = is
	}

	return issues, total, nil
}

func (r *IssueRepository) CountByStatus(ctx context.Context) (map[vo.IssueStatus]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.IssueModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count issues by status: %w", err)
	}

	counts := make(map[vo.IssueStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.IssueStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *IssueRepository) CountByPriority(ctx context.Context) (map[vo.Priority]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Priority string
		Count    int64
	}
	if err := tx.
		Model(&models.IssueModel{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count issues by priority: %w", err)
	}

	counts := make(map[vo.Priority]int64, len(rows))
	for _, row := range rows {
		counts[vo.Priority(row.Priority)] = row.Count
	}
	return counts, nil
}

func (r *IssueRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.IssueModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count issues by category: %w", err)
	}

	return count, nil
}

func (r *IssueRepository) ExistsByID(ctx context.Context, issueID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", issueID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check issue existence: %w", err)
	}

	return count > 0, nil
}

func (r *IssueRepository) GetTitlesByIDs(ctx context.Context, issueIDs []uint) (map[uint]string, error) {
	titles := make(map[uint]string, len(issueIDs))
	if len(issueIDs) == 0 {
		return titles, nil
	}

	var issueModels []models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Select("id", "title").
		Where("id IN ?", issueIDs).
		Find(&issueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve issue titles: %w", err)
	}

	for _, model := range issueModels {
		titles[model.ID] = model.Title
	}

	return titles, nil
}
