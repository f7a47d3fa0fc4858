package usecases

import (
	"context"

	"nagarsetu/internal/application/category/dto"
	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID  uint
	Name        string
	Description string
	Icon        string
	Color       string
}

type UpdateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing update category use case", "category_id", cmd.CategoryID)

	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	cat, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != cat.Name() {
		exists, err := uc.categoryRepo.ExistsByName(ctx, cmd.Name)
		if err != nil {
			uc.logger.Errorw("failed to check category name", "error", err)
			return nil, err
		}
		if exists {
			return nil, errors.NewConflictError("category name already exists")
		}
	}

	if err := cat.Update(cmd.Name, cmd.Description, cmd.Icon, cmd.Color); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Update(ctx, cat); err != nil {
		uc.logger.Errorw("failed to update category", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}

	uc.logger.Infow("category updated", "category_id", cat.ID(), "name", cat.Name())

	result := dto.ToCategoryDTO(cat)
	return &result, nil
}
