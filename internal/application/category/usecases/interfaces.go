package usecases

import (
	"context"

	"nagarsetu/internal/application/category/dto"
)

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryDTO, error)
}

type GetCategoryExecutor interface {
	Execute(ctx context.Context, categoryID uint) (*dto.CategoryDTO, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, categoryID uint) error
}
