// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-app/backend/internal/domain/entity"
)

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	date := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	// record builds a planned record and pins CreatedAt so ordering
	// assertions do not depend on wall-clock resolution.
	record := func(ownerID uuid.UUID, kind entity.TransactionKind, name string, subtype entity.Subtype, categoryID string, amount int64, plannedDate *time.Time, createdAt time.Time) *entity.Transaction {
		transaction := entity.NewTransaction(ownerID, kind, name, subtype, categoryID, decimal.NewFromInt(amount), decimal.Zero, plannedDate, nil)
		transaction.CreatedAt = createdAt
		return transaction
	}

	t.Run("create and find by period round trip", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		transaction := entity.NewTransaction(
			owner, entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia",
			decimal.NewFromInt(1200), decimal.Zero, date(2026, time.March, 5), nil,
		)

		if err := repo.Create(ctx, transaction); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByPeriod(ctx, owner, entity.TransactionKindExpense, entity.Period{Month: 3, Year: 2026})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 record, got %d", len(found))
		}

		got := found[0]
		if got.Name != "Aluguel" || got.Subtype != entity.SubtypeFixed || got.CategoryID != "moradia" {
			t.Errorf("got (%s, %s, %s), want (Aluguel, fixed, moradia)", got.Name, got.Subtype, got.CategoryID)
		}
		if !got.PlannedAmount.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("PlannedAmount = %s, want 1200", got.PlannedAmount)
		}
		if got.Realized {
			t.Error("planned-only record must not be realized")
		}
	})

	t.Run("find by period filters owner, kind and partition", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

		inPeriod := record(owner, entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia", 1200, date(2026, time.March, 5), base)
		otherMonth := record(owner, entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia", 1200, date(2026, time.April, 5), base)
		otherKind := record(owner, entity.TransactionKindIncome, "Salário", entity.SubtypeRecurring, "", 3000, date(2026, time.March, 5), base)
		otherOwner := record(uuid.New(), entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia", 900, date(2026, time.March, 5), base)

		for _, transaction := range []*entity.Transaction{inPeriod, otherMonth, otherKind, otherOwner} {
			if err := repo.Create(ctx, transaction); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		found, err := repo.FindByPeriod(ctx, owner, entity.TransactionKindExpense, entity.Period{Month: 3, Year: 2026})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].ID != inPeriod.ID {
			t.Errorf("expected only the in-period record, got %d records", len(found))
		}
	})

	t.Run("find by period returns oldest entry first", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

		second := record(owner, entity.TransactionKindExpense, "Mercado", entity.SubtypeVariable, "alimentacao", 300, date(2026, time.March, 10), base.Add(time.Hour))
		first := record(owner, entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia", 1200, date(2026, time.March, 5), base)

		for _, transaction := range []*entity.Transaction{second, first} {
			if err := repo.Create(ctx, transaction); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		found, err := repo.FindByPeriod(ctx, owner, entity.TransactionKindExpense, entity.Period{Month: 3, Year: 2026})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 records, got %d", len(found))
		}
		if found[0].Name != "Aluguel" || found[1].Name != "Mercado" {
			t.Errorf("order = [%s, %s], want [Aluguel, Mercado]", found[0].Name, found[1].Name)
		}
	})

	t.Run("count by category spans periods", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

		records := []*entity.Transaction{
			record(owner, entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia", 1200, date(2026, time.March, 5), base),
			record(owner, entity.TransactionKindExpense, "Condomínio", entity.SubtypeFixed, "moradia", 400, date(2026, time.April, 5), base),
			record(owner, entity.TransactionKindExpense, "Mercado", entity.SubtypeVariable, "alimentacao", 300, date(2026, time.March, 10), base),
			record(uuid.New(), entity.TransactionKindExpense, "Aluguel", entity.SubtypeFixed, "moradia", 900, date(2026, time.March, 5), base),
		}
		for _, transaction := range records {
			if err := repo.Create(ctx, transaction); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		count, err := repo.CountByCategory(ctx, owner, entity.TransactionKindExpense, "moradia")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("count = %d, want 2", count)
		}

		count, err = repo.CountByCategory(ctx, owner, entity.TransactionKindExpense, "lazer")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("count = %d, want 0", count)
		}
	})
}
