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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewCommentRepository(gormDB *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gormDB,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *issue.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

// GetByIssueID returns comments oldest first. Internal comments are
// excluded in the query itself unless includeInternal is set.
func (r *CommentRepository) GetByIssueID(ctx context.Context, issueID uint, includeInternal bool) ([]*issue.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("issue_id = ?", issueID)

	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var commentModels []models.CommentModel
	if err := query.Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*issue.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}
