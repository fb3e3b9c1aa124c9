// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
)

// PlaceholderCategoryName is shown when a category id cannot be resolved,
// matching the form's unselected state.
const PlaceholderCategoryName = "Selecionar categoria"

// ResolveNameInput represents the input for resolving a category display name.
type ResolveNameInput struct {
	OwnerID    uuid.UUID
	Kind       entity.CategoryKind
	CategoryID string
}

// ResolveNameOutput represents the output of resolving a category display name.
type ResolveNameOutput struct {
	Name string
}

// ResolveNameUseCase looks up a category's display name in the merged
// catalog, falling back to the placeholder when the id is unknown.
type ResolveNameUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewResolveNameUseCase creates a new ResolveNameUseCase instance.
func NewResolveNameUseCase(categoryRepo adapter.CategoryRepository) *ResolveNameUseCase {
	return &ResolveNameUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the lookup.
func (uc *ResolveNameUseCase) Execute(ctx context.Context, input ResolveNameInput) (*ResolveNameOutput, error) {
	for _, builtin := range entity.BuiltinCategories(input.Kind) {
		if builtin.ID == input.CategoryID {
			return &ResolveNameOutput{Name: builtin.Name}, nil
		}
	}

	custom, err := uc.categoryRepo.FindByOwnerAndKind(ctx, input.OwnerID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom categories: %w", err)
	}
	for _, cat := range custom {
		if cat.ID == input.CategoryID {
			return &ResolveNameOutput{Name: cat.Name}, nil
		}
	}

	return &ResolveNameOutput{Name: PlaceholderCategoryName}, nil
}
