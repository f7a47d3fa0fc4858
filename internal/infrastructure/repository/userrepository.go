package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/infrastructure/persistence/models"
	"nagarsetu/internal/shared/db"
	"nagarsetu/internal/shared/errors"
)

// UserRepository reads accounts owned by the identity service.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(gormDB *gorm.DB) *UserRepository {
	return &UserRepository{db: gormDB}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user.ReconstructUser(model.ID, model.Name, model.Email, model.Role, model.CreatedAt), nil
}

func (r *UserRepository) GetNamesByIDs(ctx context.Context, userIDs []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Select("id", "name").
		Where("id IN ?", userIDs).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve user names: %w", err)
	}

	for _, model := range userModels {
		names[model.ID] = model.Name
	}

	return names, nil
}
