// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction record.
type TransactionKind string

const (
	TransactionKindIncome     TransactionKind = "income"
	TransactionKindExpense    TransactionKind = "expense"
	TransactionKindInvestment TransactionKind = "investment"
)

// Subtype represents the kind-specific classification of a transaction.
// Income records are recurring or extra; expense records are fixed or
// variable; investment records carry no subtype.
type Subtype string

const (
	SubtypeRecurring Subtype = "recurring"
	SubtypeExtra     Subtype = "extra"
	SubtypeFixed     Subtype = "fixed"
	SubtypeVariable  Subtype = "variable"
	SubtypeNone      Subtype = ""
)

// ValidSubtypeFor reports whether the subtype is allowed for the given kind.
func ValidSubtypeFor(kind TransactionKind, subtype Subtype) bool {
	switch kind {
	case TransactionKindIncome:
		return subtype == SubtypeRecurring || subtype == SubtypeExtra
	case TransactionKindExpense:
		return subtype == SubtypeFixed || subtype == SubtypeVariable
	case TransactionKindInvestment:
		return subtype == SubtypeNone
	}
	return false
}

// Transaction represents a financial record: an income, an expense or an
// investment. The three kinds are structurally identical and differ only in
// the Kind discriminant and the subtype values it admits.
//
// A transaction carries a planned and an actual (amount, date) pair; at least
// one member of each pair is present. The effective fields and the
// (Month, Year) partition key are derived at creation time and never change:
// there is no edit path for transactions.
type Transaction struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Kind       TransactionKind
	Name       string
	Subtype    Subtype
	CategoryID string // slug reference, expense/investment only

	PlannedAmount decimal.Decimal // zero means absent
	ActualAmount  decimal.Decimal // zero means absent
	PlannedDate   *time.Time
	ActualDate    *time.Time

	EffectiveAmount decimal.Decimal
	EffectiveDate   time.Time
	Month           int // 1-12, from EffectiveDate
	Year            int
	Realized        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a Transaction and derives its effective fields.
// The actual amount wins over the planned one when it is nonzero; the actual
// date wins over the planned one when it is set. Realized means the record
// has actually happened: both an actual date and a nonzero actual amount.
//
// Callers must have validated the pairs already (see the transaction use
// cases); NewTransaction only derives.
func NewTransaction(
	ownerID uuid.UUID,
	kind TransactionKind,
	name string,
	subtype Subtype,
	categoryID string,
	plannedAmount, actualAmount decimal.Decimal,
	plannedDate, actualDate *time.Time,
) *Transaction {
	now := time.Now().UTC()

	effectiveAmount := plannedAmount
	if !actualAmount.IsZero() {
		effectiveAmount = actualAmount
	}

	var effectiveDate time.Time
	if actualDate != nil {
		effectiveDate = *actualDate
	} else if plannedDate != nil {
		effectiveDate = *plannedDate
	}

	return &Transaction{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Kind:            kind,
		Name:            name,
		Subtype:         subtype,
		CategoryID:      categoryID,
		PlannedAmount:   plannedAmount,
		ActualAmount:    actualAmount,
		PlannedDate:     plannedDate,
		ActualDate:      actualDate,
		EffectiveAmount: effectiveAmount,
		EffectiveDate:   effectiveDate,
		Month:           int(effectiveDate.Month()),
		Year:            effectiveDate.Year(),
		Realized:        actualDate != nil && !actualAmount.IsZero(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
