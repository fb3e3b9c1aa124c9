// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	OwnerID    uuid.UUID
	Kind       entity.CategoryKind
	CategoryID string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles guarded category deletion. Built-ins are
// refused outright; custom categories are deleted only when no transaction of
// the category's kind still references them, otherwise the blocking count is
// reported.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	// Built-ins are protected regardless of usage.
	for _, builtin := range entity.BuiltinCategories(input.Kind) {
		if builtin.ID == input.CategoryID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotCustom,
				"built-in categories cannot be deleted",
				domainerror.ErrCategoryNotCustom,
			)
		}
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.OwnerID, input.Kind, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if !category.IsCustom {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotCustom,
			"built-in categories cannot be deleted",
			domainerror.ErrCategoryNotCustom,
		)
	}

	count, err := uc.transactionRepo.CountByCategory(
		ctx,
		input.OwnerID,
		entity.TransactionKindFor(input.Kind),
		input.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count category references: %w", err)
	}
	if count > 0 {
		return nil, &domainerror.CategoryInUseError{
			CategoryID: input.CategoryID,
			Count:      int(count),
		}
	}

	if err := uc.categoryRepo.Delete(ctx, input.OwnerID, input.Kind, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{Success: true}, nil
}
