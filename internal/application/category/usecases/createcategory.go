package usecases

import (
	"context"

	"nagarsetu/internal/application/category/dto"
	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

type CreateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create category command", "error", err)
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check category name", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("category name already exists")
	}

	cat, err := category.NewCategory(cmd.Name, cmd.Description, cmd.Icon, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, cat); err != nil {
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", cat.ID(), "name", cat.Name())

	result := dto.ToCategoryDTO(cat)
	return &result, nil
}

func (uc *CreateCategoryUseCase) validateCommand(cmd CreateCategoryCommand) error {
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 100 {
		return errors.NewValidationError("name exceeds maximum length of 100 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	return nil
}
