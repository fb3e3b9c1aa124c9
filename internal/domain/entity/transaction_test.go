// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestValidSubtypeFor(t *testing.T) {
	cases := []struct {
		name    string
		kind    TransactionKind
		subtype Subtype
		want    bool
	}{
		{"income recurring", TransactionKindIncome, SubtypeRecurring, true},
		{"income extra", TransactionKindIncome, SubtypeExtra, true},
		{"income fixed is invalid", TransactionKindIncome, SubtypeFixed, false},
		{"income without subtype is invalid", TransactionKindIncome, SubtypeNone, false},
		{"expense fixed", TransactionKindExpense, SubtypeFixed, true},
		{"expense variable", TransactionKindExpense, SubtypeVariable, true},
		{"expense recurring is invalid", TransactionKindExpense, SubtypeRecurring, false},
		{"investment has no subtype", TransactionKindInvestment, SubtypeNone, true},
		{"investment fixed is invalid", TransactionKindInvestment, SubtypeFixed, false},
		{"unknown kind", TransactionKind("loan"), SubtypeNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidSubtypeFor(tc.kind, tc.subtype); got != tc.want {
				t.Errorf("ValidSubtypeFor(%q, %q) = %v, want %v", tc.kind, tc.subtype, got, tc.want)
			}
		})
	}
}

func TestNewTransactionDerivedFields(t *testing.T) {
	owner := uuid.New()

	t.Run("planned only record", func(t *testing.T) {
		planned := decimal.NewFromInt(1200)
		record := NewTransaction(owner, TransactionKindExpense, "Aluguel", SubtypeFixed, "moradia",
			planned, decimal.Zero, date(2026, time.March, 5), nil)

		if !record.EffectiveAmount.Equal(planned) {
			t.Errorf("EffectiveAmount = %s, want %s", record.EffectiveAmount, planned)
		}
		if !record.EffectiveDate.Equal(*date(2026, time.March, 5)) {
			t.Errorf("EffectiveDate = %s, want planned date", record.EffectiveDate)
		}
		if record.Month != 3 || record.Year != 2026 {
			t.Errorf("partition = (%d, %d), want (3, 2026)", record.Month, record.Year)
		}
		if record.Realized {
			t.Error("planned-only record must not be realized")
		}
	})

	t.Run("actual amount wins over planned", func(t *testing.T) {
		planned := decimal.NewFromInt(3000)
		actual := decimal.NewFromInt(3050)
		record := NewTransaction(owner, TransactionKindIncome, "Salário", SubtypeRecurring, "",
			planned, actual, date(2026, time.March, 1), date(2026, time.March, 2))

		if !record.EffectiveAmount.Equal(actual) {
			t.Errorf("EffectiveAmount = %s, want %s", record.EffectiveAmount, actual)
		}
		if !record.EffectiveDate.Equal(*date(2026, time.March, 2)) {
			t.Errorf("EffectiveDate = %s, want actual date", record.EffectiveDate)
		}
		if !record.Realized {
			t.Error("record with actual pair must be realized")
		}
	})

	t.Run("actual date alone does not realize", func(t *testing.T) {
		record := NewTransaction(owner, TransactionKindExpense, "Luz", SubtypeFixed, "energia",
			decimal.NewFromInt(150), decimal.Zero, nil, date(2026, time.March, 10))

		if record.Realized {
			t.Error("realized requires a nonzero actual amount")
		}
		if !record.EffectiveDate.Equal(*date(2026, time.March, 10)) {
			t.Errorf("EffectiveDate = %s, want actual date", record.EffectiveDate)
		}
	})

	t.Run("actual amount alone does not realize", func(t *testing.T) {
		record := NewTransaction(owner, TransactionKindExpense, "Mercado", SubtypeVariable, "alimentacao",
			decimal.Zero, decimal.NewFromInt(450), date(2026, time.March, 10), nil)

		if record.Realized {
			t.Error("realized requires an actual date")
		}
		if !record.EffectiveAmount.Equal(decimal.NewFromInt(450)) {
			t.Errorf("EffectiveAmount = %s, want 450", record.EffectiveAmount)
		}
	})

	t.Run("ids and owner are assigned", func(t *testing.T) {
		record := NewTransaction(owner, TransactionKindInvestment, "Reserva", SubtypeNone, "reserva",
			decimal.NewFromInt(400), decimal.Zero, date(2026, time.March, 20), nil)

		if record.ID == uuid.Nil {
			t.Error("expected a generated id")
		}
		if record.OwnerID != owner {
			t.Errorf("OwnerID = %s, want %s", record.OwnerID, owner)
		}
	})
}
