// Package setup contains the one-time initial setup wizard use cases.
package setup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

type fakeUserRepo struct {
	marked  []uuid.UUID
	markErr error
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }

func (f *fakeUserRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) MarkInitialSetupDone(_ context.Context, id uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	createErr    error
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByPeriod(_ context.Context, _ uuid.UUID, _ entity.TransactionKind, _ entity.Period) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) CountByCategory(_ context.Context, _ uuid.UUID, _ entity.TransactionKind, _ string) (int64, error) {
	return 0, nil
}

func TestCompleteSetupUseCase(t *testing.T) {
	owner := uuid.New()

	newUseCase := func(userRepo *fakeUserRepo, txnRepo *fakeTransactionRepo) *CompleteSetupUseCase {
		uc := NewCompleteSetupUseCase(userRepo, txnRepo)
		uc.now = func() time.Time {
			return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
		}
		return uc
	}

	t.Run("seeds one record per populated field", func(t *testing.T) {
		userRepo := &fakeUserRepo{}
		txnRepo := &fakeTransactionRepo{}
		uc := newUseCase(userRepo, txnRepo)

		output, err := uc.Execute(context.Background(), CompleteSetupInput{
			OwnerID: owner,
			Values: map[string]string{
				"rendaRecorrente": "3000,00",
				"moradia":         "1200,00",
				"alimentacao":     "800,00",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SeededCount != 3 {
			t.Errorf("SeededCount = %d, want 3", output.SeededCount)
		}
		if len(txnRepo.transactions) != 3 {
			t.Fatalf("expected 3 persisted records, got %d", len(txnRepo.transactions))
		}

		byName := make(map[string]*entity.Transaction)
		for _, record := range txnRepo.transactions {
			byName[record.Name] = record
		}

		income := byName["Renda recorrente"]
		if income == nil {
			t.Fatal("missing income record")
		}
		if income.Kind != entity.TransactionKindIncome || income.Subtype != entity.SubtypeRecurring {
			t.Errorf("income record = (%s, %s), want (income, recurring)", income.Kind, income.Subtype)
		}
		if !income.PlannedAmount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("income PlannedAmount = %s, want 3000", income.PlannedAmount)
		}
		if !income.ActualAmount.IsZero() {
			t.Error("seeded amounts are baselines, stored as planned")
		}
		if income.Month != 3 || income.Year != 2026 {
			t.Errorf("income partition = (%d, %d), want (3, 2026)", income.Month, income.Year)
		}

		housing := byName["Moradia/Aluguel"]
		if housing == nil {
			t.Fatal("missing housing record")
		}
		if housing.Subtype != entity.SubtypeFixed || housing.CategoryID != "moradia" {
			t.Errorf("housing record = (%s, %s), want (fixed, moradia)", housing.Subtype, housing.CategoryID)
		}

		market := byName["Mercado"]
		if market == nil {
			t.Fatal("missing market record")
		}
		if market.Subtype != entity.SubtypeVariable {
			t.Errorf("market Subtype = %s, want variable", market.Subtype)
		}
	})

	t.Run("empty and zero fields are skipped", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{}
		uc := newUseCase(&fakeUserRepo{}, txnRepo)

		output, err := uc.Execute(context.Background(), CompleteSetupInput{
			OwnerID: owner,
			Values: map[string]string{
				"rendaRecorrente": "3000,00",
				"rendaExtra":      "",
				"moradia":         "0,00",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SeededCount != 1 {
			t.Errorf("SeededCount = %d, want 1", output.SeededCount)
		}
	})

	t.Run("all empty still completes the setup", func(t *testing.T) {
		userRepo := &fakeUserRepo{}
		uc := newUseCase(userRepo, &fakeTransactionRepo{})

		output, err := uc.Execute(context.Background(), CompleteSetupInput{
			OwnerID: owner,
			Values:  map[string]string{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SeededCount != 0 {
			t.Errorf("SeededCount = %d, want 0", output.SeededCount)
		}
		if len(userRepo.marked) != 1 || userRepo.marked[0] != owner {
			t.Error("expected the initial-setup flag to be marked")
		}
	})

	t.Run("investment fields seed without a subtype", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{}
		uc := newUseCase(&fakeUserRepo{}, txnRepo)

		_, err := uc.Execute(context.Background(), CompleteSetupInput{
			OwnerID: owner,
			Values:  map[string]string{"reservaEmergencia": "500,00"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txnRepo.transactions) != 1 {
			t.Fatalf("expected 1 record, got %d", len(txnRepo.transactions))
		}

		reserve := txnRepo.transactions[0]
		if reserve.Kind != entity.TransactionKindInvestment || reserve.Subtype != entity.SubtypeNone {
			t.Errorf("record = (%s, %q), want (investment, \"\")", reserve.Kind, reserve.Subtype)
		}
		if reserve.CategoryID != "reserva" {
			t.Errorf("CategoryID = %q, want reserva", reserve.CategoryID)
		}
	})

	t.Run("missing owner is refused", func(t *testing.T) {
		uc := newUseCase(&fakeUserRepo{}, &fakeTransactionRepo{})

		_, err := uc.Execute(context.Background(), CompleteSetupInput{
			OwnerID: uuid.Nil,
			Values:  map[string]string{"rendaRecorrente": "3000,00"},
		})
		if !errors.Is(err, domainerror.ErrMissingOwner) {
			t.Errorf("expected ErrMissingOwner, got %v", err)
		}
	})

	t.Run("flag failure aborts before seeding", func(t *testing.T) {
		userRepo := &fakeUserRepo{markErr: errors.New("store down")}
		txnRepo := &fakeTransactionRepo{}
		uc := newUseCase(userRepo, txnRepo)

		_, err := uc.Execute(context.Background(), CompleteSetupInput{
			OwnerID: owner,
			Values:  map[string]string{"rendaRecorrente": "3000,00"},
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(txnRepo.transactions) != 0 {
			t.Error("no record may be seeded when the flag write fails")
		}
	})
}
