package usecases

import (
	"context"

	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/domain/issue"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
)

type DeleteCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	issueRepo    issue.IssueRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo category.CategoryRepository,
	issueRepo issue.IssueRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		issueRepo:    issueRepo,
		logger:       logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, categoryID uint) error {
	uc.logger.Infow("executing delete category use case", "category_id", categoryID)

	if categoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}

	// Categories with filed issues cannot be removed; reassign or resolve
	// the issues first.
	count, err := uc.issueRepo.CountByCategoryID(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to count issues for category", "error", err, "category_id", categoryID)
		return err
	}
	if count > 0 {
		return errors.NewConflictError("category has issues and cannot be deleted")
	}

	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", categoryID)
		return err
	}

	uc.logger.Infow("category deleted", "category_id", categoryID)
	return nil
}
