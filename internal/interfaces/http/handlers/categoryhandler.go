package handlers

import (
	"github.com/gin-gonic/gin"

	categoryusecases "nagarsetu/internal/application/category/usecases"
	"nagarsetu/internal/interfaces/dto"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/utils"
)

type CategoryHandler struct {
	listCategories categoryusecases.ListCategoriesExecutor
	getCategory    categoryusecases.GetCategoryExecutor
	createCategory categoryusecases.CreateCategoryExecutor
	updateCategory categoryusecases.UpdateCategoryExecutor
	deleteCategory categoryusecases.DeleteCategoryExecutor
	logger         logger.Interface
}

func NewCategoryHandler(
	listCategories categoryusecases.ListCategoriesExecutor,
	getCategory categoryusecases.GetCategoryExecutor,
	createCategory categoryusecases.CreateCategoryExecutor,
	updateCategory categoryusecases.UpdateCategoryExecutor,
	deleteCategory categoryusecases.DeleteCategoryExecutor,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		listCategories: listCategories,
		getCategory:    getCategory,
		createCategory: createCategory,
		updateCategory: updateCategory,
		deleteCategory: deleteCategory,
		logger:         logger,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCategory.Execute(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCategory.Execute(c.Request.Context(), categoryusecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category", "category_id", categoryID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCategory.Execute(c.Request.Context(), categoryusecases.UpdateCategoryCommand{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Category updated successfully", result)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCategory.Execute(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
