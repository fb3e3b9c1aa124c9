// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	// customAt builds a custom category with a fixed creation instant so
	// ordering assertions do not depend on wall-clock resolution.
	customAt := func(id, name string, kind entity.CategoryKind, ownerID uuid.UUID, createdAt time.Time) *entity.Category {
		category := entity.NewCustomCategory(id, name, kind, ownerID)
		category.CreatedAt = &createdAt
		return category
	}

	t.Run("create and find by id", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		category := entity.NewCustomCategory("assinaturas", "Assinaturas", entity.CategoryKindExpense, owner)

		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, owner, entity.CategoryKindExpense, "assinaturas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Assinaturas" || !found.IsCustom {
			t.Errorf("found (%s, custom=%t), want (Assinaturas, custom=true)", found.Name, found.IsCustom)
		}
	})

	t.Run("find by id is scoped to owner and kind", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		if err := repo.Create(ctx, entity.NewCustomCategory("metas", "Metas", entity.CategoryKindInvestment, owner)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, owner, entity.CategoryKindExpense, "metas"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound for the wrong kind, got %v", err)
		}
		if _, err := repo.FindByID(ctx, uuid.New(), entity.CategoryKindInvestment, "metas"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound for another owner, got %v", err)
		}
	})

	t.Run("find by owner and kind returns oldest first", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

		second := customAt("pets", "Pets", entity.CategoryKindExpense, owner, base.Add(time.Hour))
		first := customAt("assinaturas", "Assinaturas", entity.CategoryKindExpense, owner, base)
		otherKind := customAt("metas", "Metas", entity.CategoryKindInvestment, owner, base)
		otherOwner := customAt("viagens", "Viagens", entity.CategoryKindExpense, uuid.New(), base)

		for _, c := range []*entity.Category{second, first, otherKind, otherOwner} {
			if err := repo.Create(ctx, c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		categories, err := repo.FindByOwnerAndKind(ctx, owner, entity.CategoryKindExpense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].ID != "assinaturas" || categories[1].ID != "pets" {
			t.Errorf("order = [%s, %s], want [assinaturas, pets]", categories[0].ID, categories[1].ID)
		}
	})

	t.Run("find by owner spans kinds", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		if err := repo.Create(ctx, entity.NewCustomCategory("pets", "Pets", entity.CategoryKindExpense, owner)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, entity.NewCustomCategory("metas", "Metas", entity.CategoryKindInvestment, owner)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		categories, err := repo.FindByOwner(ctx, owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(categories))
		}
	})

	t.Run("same slug may exist once per kind", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		if err := repo.Create(ctx, entity.NewCustomCategory("extras", "Extras", entity.CategoryKindExpense, owner)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, entity.NewCustomCategory("extras", "Extras", entity.CategoryKindInvestment, owner)); err != nil {
			t.Errorf("expected the other kind to accept the slug, got %v", err)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		if err := repo.Create(ctx, entity.NewCustomCategory("temporaria", "Temporária", entity.CategoryKindExpense, owner)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, owner, entity.CategoryKindExpense, "temporaria"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, owner, entity.CategoryKindExpense, "temporaria"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound after delete, got %v", err)
		}
	})

	t.Run("delete of an unknown slug fails", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		err := repo.Delete(ctx, owner, entity.CategoryKindExpense, "inexistente")
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
