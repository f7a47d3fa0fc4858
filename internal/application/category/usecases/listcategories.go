package usecases

import (
	"context"

	"nagarsetu/internal/application/category/dto"
	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	return dto.ToCategoryDTOs(categories), nil
}
