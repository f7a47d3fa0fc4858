package usecases

import (
	"context"

	"nagarsetu/internal/application/category/dto"
	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type GetCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewGetCategoryUseCase(
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, categoryID uint) (*dto.CategoryDTO, error) {
	if categoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	cat, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	result := dto.ToCategoryDTO(cat)
	return &result, nil
}
