// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	OwnerID uuid.UUID
	Kind    *entity.CategoryKind // Optional filter; nil lists both kinds
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase produces the merged catalog: the built-in table of a
// kind, in its fixed order, followed by the user's custom categories of that
// kind in store order. Built-ins are compile-time constants; the merge is a
// pure function of (constants, loaded rows).
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing. The kind-less listing loads the
// owner's custom rows in one query and partitions them per kind.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Kind != nil {
		custom, err := uc.categoryRepo.FindByOwnerAndKind(ctx, input.OwnerID, *input.Kind)
		if err != nil {
			return nil, fmt.Errorf("failed to load custom categories: %w", err)
		}
		return &ListCategoriesOutput{Categories: MergeCatalog(*input.Kind, custom)}, nil
	}

	custom, err := uc.categoryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom categories: %w", err)
	}
	byKind := make(map[entity.CategoryKind][]*entity.Category)
	for _, c := range custom {
		byKind[c.Kind] = append(byKind[c.Kind], c)
	}

	var merged []*entity.Category
	for _, kind := range []entity.CategoryKind{entity.CategoryKindExpense, entity.CategoryKindInvestment} {
		merged = append(merged, MergeCatalog(kind, byKind[kind])...)
	}
	return &ListCategoriesOutput{Categories: merged}, nil
}

// MergeCatalog merges the built-in table for a kind with the user's custom
// rows of that kind, built-ins first.
func MergeCatalog(kind entity.CategoryKind, custom []*entity.Category) []*entity.Category {
	builtins := entity.BuiltinCategories(kind)
	merged := make([]*entity.Category, 0, len(builtins)+len(custom))
	for i := range builtins {
		builtin := builtins[i]
		merged = append(merged, &builtin)
	}
	merged = append(merged, custom...)
	return merged
}
