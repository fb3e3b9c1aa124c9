// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind a category belongs to. A category belongs
// to exactly one kind; the same display concept may exist once per kind with
// an identical slug (e.g. "outros" in both expense and investment).
type CategoryKind string

const (
	CategoryKindExpense    CategoryKind = "expense"
	CategoryKindInvestment CategoryKind = "investment"
)

// Category represents a transaction category. Built-in categories are global
// constants, never persisted and never deletable; custom categories are
// user-created rows whose ID is a slug derived from the display name.
type Category struct {
	ID        string // slug; fixed literal for built-ins
	Name      string
	Kind      CategoryKind
	IsCustom  bool
	OwnerID   uuid.UUID  // set only when IsCustom
	CreatedAt *time.Time // set only when IsCustom
}

// NewCustomCategory creates a user-defined category with the given slug id.
func NewCustomCategory(id, name string, kind CategoryKind, ownerID uuid.UUID) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        id,
		Name:      name,
		Kind:      kind,
		IsCustom:  true,
		OwnerID:   ownerID,
		CreatedAt: &now,
	}
}

// Built-in catalog, in fixed display order. The tables are compile-time
// constants merged ahead of the user's custom rows by the catalog use case.
var (
	BuiltinExpenseCategories = []Category{
		{ID: "moradia", Name: "🏠 Moradia", Kind: CategoryKindExpense},
		{ID: "alimentacao", Name: "🍔 Alimentação", Kind: CategoryKindExpense},
		{ID: "transporte", Name: "🚗 Transporte", Kind: CategoryKindExpense},
		{ID: "lazer", Name: "🎮 Lazer", Kind: CategoryKindExpense},
		{ID: "saude", Name: "🏥 Saúde", Kind: CategoryKindExpense},
		{ID: "educacao", Name: "📚 Educação", Kind: CategoryKindExpense},
		{ID: "outros", Name: "📦 Outros", Kind: CategoryKindExpense},
	}

	BuiltinInvestmentCategories = []Category{
		{ID: "reserva", Name: "💰 Reserva de emergência", Kind: CategoryKindInvestment},
		{ID: "investimentos", Name: "📈 Investimentos & CDB", Kind: CategoryKindInvestment},
		{ID: "outros", Name: "📦 Outros", Kind: CategoryKindInvestment},
	}
)

// BuiltinCategories returns the built-in table for a kind. The returned slice
// must not be mutated.
func BuiltinCategories(kind CategoryKind) []Category {
	switch kind {
	case CategoryKindExpense:
		return BuiltinExpenseCategories
	case CategoryKindInvestment:
		return BuiltinInvestmentCategories
	}
	return nil
}

// TransactionKindFor maps a category kind to the transaction collection its
// references live in.
func TransactionKindFor(kind CategoryKind) TransactionKind {
	if kind == CategoryKindInvestment {
		return TransactionKindInvestment
	}
	return TransactionKindExpense
}
