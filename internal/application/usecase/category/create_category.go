// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name    string
	Kind    entity.CategoryKind
	OwnerID uuid.UUID
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles custom category creation. The id is a slug
// derived from the display name; uniqueness is enforced per kind against the
// merged catalog (built-ins included), by slug or case-insensitive name.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryName,
			"category name is required",
			domainerror.ErrEmptyCategoryName,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryName,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrEmptyCategoryName,
		)
	}
	if !isValidKind(input.Kind) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'expense' or 'investment'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	slug := Slugify(name)

	// The duplicate check runs against the merged catalog of the same kind
	// only: "outros" legitimately exists in both kinds.
	custom, err := uc.categoryRepo.FindByOwnerAndKind(ctx, input.OwnerID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}
	for _, existing := range MergeCatalog(input.Kind, custom) {
		if existing.ID == slug || strings.EqualFold(existing.Name, name) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeDuplicateCategory,
				"a category with this name already exists",
				domainerror.ErrDuplicateCategory,
			)
		}
	}

	category := entity.NewCustomCategory(slug, name, input.Kind, input.OwnerID)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

// isValidKind validates the category kind.
func isValidKind(kind entity.CategoryKind) bool {
	return kind == entity.CategoryKindExpense || kind == entity.CategoryKindInvestment
}
