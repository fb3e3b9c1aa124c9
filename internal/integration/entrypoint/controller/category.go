// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financas-app/backend/internal/application/usecase/category"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/integration/entrypoint/dto"
	"github.com/financas-app/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase    *category.ListCategoriesUseCase
	createUseCase  *category.CreateCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	resolveUseCase *category.ResolveNameUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	resolveUseCase *category.ResolveNameUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		deleteUseCase:  deleteUseCase,
		resolveUseCase: resolveUseCase,
	}
}

// List handles GET /categories requests. The response is the merged catalog:
// built-ins in fixed order, then the user's custom categories.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := category.ListCategoriesInput{
		OwnerID: userID,
	}
	if kind := ctx.Query("kind"); kind != "" {
		k := entity.CategoryKind(kind)
		input.Kind = &k
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyCategoryName),
		})
		return
	}

	input := category.CreateCategoryInput{
		Name:    req.Name,
		Kind:    entity.CategoryKind(req.Kind),
		OwnerID: userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:kind/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	kind := entity.CategoryKind(ctx.Param("kind"))
	if kind != entity.CategoryKindExpense && kind != entity.CategoryKindInvestment {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category kind",
			Code:  string(domainerror.ErrCodeInvalidCategoryKind),
		})
		return
	}

	input := category.DeleteCategoryInput{
		OwnerID:    userID,
		Kind:       kind,
		CategoryID: ctx.Param("id"),
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ResolveName handles GET /categories/:kind/:id/name requests. Unknown ids
// resolve to the placeholder name rather than an error.
func (c *CategoryController) ResolveName(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := category.ResolveNameInput{
		OwnerID:    userID,
		Kind:       entity.CategoryKind(ctx.Param("kind")),
		CategoryID: ctx.Param("id"),
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to resolve category name",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"name": output.Name})
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var inUseErr *domainerror.CategoryInUseError
	if errors.As(err, &inUseErr) {
		ctx.JSON(http.StatusConflict, dto.CategoryInUseResponse{
			Error:            inUseErr.Error(),
			Code:             string(domainerror.ErrCodeCategoryInUse),
			TransactionCount: inUseErr.Count,
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateCategory,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNotCustom:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCategoryKind,
		domainerror.ErrCodeEmptyCategoryName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
