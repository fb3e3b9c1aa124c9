// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

func TestDeleteCategoryUseCase(t *testing.T) {
	owner := uuid.New()

	newUseCase := func(catRepo *fakeCategoryRepo, txnRepo *fakeTransactionRepo) *DeleteCategoryUseCase {
		if txnRepo == nil {
			txnRepo = &fakeTransactionRepo{}
		}
		return NewDeleteCategoryUseCase(catRepo, txnRepo)
	}

	t.Run("built-in categories are refused regardless of usage", func(t *testing.T) {
		uc := newUseCase(&fakeCategoryRepo{}, nil)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			OwnerID:    owner,
			Kind:       entity.CategoryKindExpense,
			CategoryID: "moradia",
		})
		if !errors.Is(err, domainerror.ErrCategoryNotCustom) {
			t.Errorf("expected ErrCategoryNotCustom, got %v", err)
		}
	})

	t.Run("unknown category id reports not found", func(t *testing.T) {
		uc := newUseCase(&fakeCategoryRepo{}, nil)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			OwnerID:    owner,
			Kind:       entity.CategoryKindExpense,
			CategoryID: "nao-existe",
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("unused custom category is deleted", func(t *testing.T) {
		catRepo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("pets", "Pets", entity.CategoryKindExpense, owner),
			},
		}
		uc := newUseCase(catRepo, nil)

		output, err := uc.Execute(context.Background(), DeleteCategoryInput{
			OwnerID:    owner,
			Kind:       entity.CategoryKindExpense,
			CategoryID: "pets",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected Success")
		}
		if len(catRepo.deleted) != 1 || catRepo.deleted[0] != "pets" {
			t.Errorf("deleted = %v, want [pets]", catRepo.deleted)
		}
	})

	t.Run("referenced category reports the blocking count", func(t *testing.T) {
		catRepo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("academia", "Academia", entity.CategoryKindExpense, owner),
			},
		}
		txnRepo := &fakeTransactionRepo{}
		for i := 0; i < 3; i++ {
			txnRepo.transactions = append(txnRepo.transactions, entity.NewTransaction(
				owner, entity.TransactionKindExpense, "Mensalidade", entity.SubtypeFixed,
				"academia", decimal.NewFromInt(120), decimal.Zero, date(2026, 3, 5), nil,
			))
		}
		uc := newUseCase(catRepo, txnRepo)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			OwnerID:    owner,
			Kind:       entity.CategoryKindExpense,
			CategoryID: "academia",
		})

		var inUse *domainerror.CategoryInUseError
		if !errors.As(err, &inUse) {
			t.Fatalf("expected CategoryInUseError, got %v", err)
		}
		if inUse.Count != 3 {
			t.Errorf("Count = %d, want 3", inUse.Count)
		}
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Error("CategoryInUseError must unwrap to ErrCategoryInUse")
		}
		if len(catRepo.deleted) != 0 {
			t.Error("category must not be deleted while referenced")
		}
	})

	t.Run("guard counts only the category's own kind", func(t *testing.T) {
		catRepo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("metas", "Metas", entity.CategoryKindInvestment, owner),
			},
		}
		// An expense referencing the same slug does not block an
		// investment category.
		txnRepo := &fakeTransactionRepo{
			transactions: []*entity.Transaction{
				entity.NewTransaction(
					owner, entity.TransactionKindExpense, "Qualquer", entity.SubtypeVariable,
					"metas", decimal.NewFromInt(50), decimal.Zero, date(2026, 3, 5), nil,
				),
			},
		}
		uc := newUseCase(catRepo, txnRepo)

		output, err := uc.Execute(context.Background(), DeleteCategoryInput{
			OwnerID:    owner,
			Kind:       entity.CategoryKindInvestment,
			CategoryID: "metas",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected deletion to succeed")
		}
	})

	t.Run("count failure aborts the deletion", func(t *testing.T) {
		catRepo := &fakeCategoryRepo{
			categories: []*entity.Category{
				entity.NewCustomCategory("pets", "Pets", entity.CategoryKindExpense, owner),
			},
		}
		txnRepo := &fakeTransactionRepo{countErr: errors.New("store down")}
		uc := newUseCase(catRepo, txnRepo)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			OwnerID:    owner,
			Kind:       entity.CategoryKindExpense,
			CategoryID: "pets",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(catRepo.deleted) != 0 {
			t.Error("category must not be deleted when the guard cannot run")
		}
	})
}
