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

type ImageRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewImageRepository(gormDB *gorm.DB) *ImageRepository {
	return &ImageRepository{
		db:     gormDB,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *ImageRepository) SaveBatch(ctx context.Context, images []*issue.Image) error {
	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*models.IssueImageModel, len(images))
	for i, im := range images {
		imageModels[i] = r.mapper.ImageToModel(im)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&imageModels).Error; err != nil {
		return fmt.Errorf("failed to save issue images: %w", err)
	}

	for i, model := range imageModels {
		if err := images[i].SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ImageRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Image, error) {
	var imageModels []models.IssueImageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id = ?", issueID).
		Order("uploaded_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find issue images: %w", err)
	}

	images := make([]*issue.Image, len(imageModels))
	for i, model := range imageModels {
		im, err := r.mapper.ImageToDomain(&model)
		if err != nil {
			return nil, err
		}
		images[i] = im
	}

	return images, nil
}

func (r *ImageRepository) GetByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*issue.Image, error) {
	result := make(map[uint][]*issue.Image, len(issueIDs))
	if len(issueIDs) == 0 {
		return result, nil
	}

	var imageModels []models.IssueImageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("issue_id IN ?", issueIDs).
		Order("uploaded_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find issue images: %w", err)
	}

	for _, model := range imageModels {
		im, err := r.mapper.ImageToDomain(&model)
		if err != nil {
			return nil, err
		}
		result[model.IssueID] = append(result[model.IssueID], im)
	}

	return result, nil
}
