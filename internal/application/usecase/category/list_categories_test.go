// Package category contains category-related use cases.
package category

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
)

func TestListCategoriesUseCase(t *testing.T) {
	owner := uuid.New()

	t.Run("expense catalog starts with the built-in table in order", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&fakeCategoryRepo{})
		kind := entity.CategoryKindExpense

		output, err := uc.Execute(context.Background(), ListCategoriesInput{OwnerID: owner, Kind: &kind})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != len(entity.BuiltinExpenseCategories) {
			t.Fatalf("expected %d categories, got %d", len(entity.BuiltinExpenseCategories), len(output.Categories))
		}
		for i, builtin := range entity.BuiltinExpenseCategories {
			if output.Categories[i].ID != builtin.ID {
				t.Errorf("position %d: expected %q, got %q", i, builtin.ID, output.Categories[i].ID)
			}
			if output.Categories[i].IsCustom {
				t.Errorf("built-in %q must not be custom", builtin.ID)
			}
		}
	})

	t.Run("custom categories follow the built-ins", func(t *testing.T) {
		repo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("pets", "Pets", entity.CategoryKindExpense, owner),
				entity.NewCustomCategory("viagem", "Viagem", entity.CategoryKindExpense, owner),
			},
		}
		uc := NewListCategoriesUseCase(repo)
		kind := entity.CategoryKindExpense

		output, err := uc.Execute(context.Background(), ListCategoriesInput{OwnerID: owner, Kind: &kind})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := len(entity.BuiltinExpenseCategories) + 2
		if len(output.Categories) != want {
			t.Fatalf("expected %d categories, got %d", want, len(output.Categories))
		}
		tail := output.Categories[len(entity.BuiltinExpenseCategories):]
		if tail[0].ID != "pets" || tail[1].ID != "viagem" {
			t.Errorf("custom tail = [%s %s], want [pets viagem]", tail[0].ID, tail[1].ID)
		}
	})

	t.Run("nil kind lists both catalogs", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&fakeCategoryRepo{})

		output, err := uc.Execute(context.Background(), ListCategoriesInput{OwnerID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := len(entity.BuiltinExpenseCategories) + len(entity.BuiltinInvestmentCategories)
		if len(output.Categories) != want {
			t.Fatalf("expected %d categories, got %d", want, len(output.Categories))
		}
	})

	t.Run("nil kind loads custom rows in one query and partitions them", func(t *testing.T) {
		repo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("metas", "Metas", entity.CategoryKindInvestment, owner),
				entity.NewCustomCategory("pets", "Pets", entity.CategoryKindExpense, owner),
			},
		}
		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListCategoriesInput{OwnerID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.findByOwnerCalls != 1 || repo.findByKindCalls != 0 {
			t.Errorf("queries = (owner %d, kind %d), want (1, 0)", repo.findByOwnerCalls, repo.findByKindCalls)
		}

		expenseTail := output.Categories[len(entity.BuiltinExpenseCategories)]
		if expenseTail.ID != "pets" {
			t.Errorf("expense custom tail = %q, want pets", expenseTail.ID)
		}
		last := output.Categories[len(output.Categories)-1]
		if last.ID != "metas" {
			t.Errorf("investment custom tail = %q, want metas", last.ID)
		}
	})

	t.Run("other owners' categories are not listed", func(t *testing.T) {
		repo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("pets", "Pets", entity.CategoryKindExpense, uuid.New()),
			},
		}
		uc := NewListCategoriesUseCase(repo)
		kind := entity.CategoryKindExpense

		output, err := uc.Execute(context.Background(), ListCategoriesInput{OwnerID: owner, Kind: &kind})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != len(entity.BuiltinExpenseCategories) {
			t.Errorf("expected only built-ins, got %d categories", len(output.Categories))
		}
	})
}
