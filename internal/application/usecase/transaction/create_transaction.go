// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for creating a transaction
// record. Amounts arrive in their masked string form, as typed.
type CreateTransactionInput struct {
	OwnerID uuid.UUID
	Draft   Draft
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// ValidationError carries the per-field messages of a failed submit so the
// caller can surface them inline. The in-progress draft is never cleared on
// failure; the user re-attempts the same submission.
type ValidationError struct {
	Fields map[Field]string
	Form   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Form
}

// Unwrap lets errors.Is match ErrTransactionInvalid.
func (e *ValidationError) Unwrap() error {
	return domainerror.ErrTransactionInvalid
}

// CreateTransactionUseCase validates a draft exhaustively, derives the
// effective fields and the (month, year) partition, and persists the record.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	// Identity is a precondition: no store call without an owner.
	if input.OwnerID == uuid.Nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingOwner,
			"owner identity is required",
			domainerror.ErrMissingOwner,
		)
	}

	draft := input.Draft
	switch draft.Kind {
	case entity.TransactionKindIncome, entity.TransactionKindExpense, entity.TransactionKindInvestment:
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be income, expense or investment",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if !entity.ValidSubtypeFor(draft.Kind, draft.Subtype) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidSubtype,
			fmt.Sprintf("subtype %q is not valid for kind %q", draft.Subtype, draft.Kind),
			domainerror.ErrInvalidSubtype,
		)
	}

	validator := NewFormValidator(draft.Kind)
	defer validator.Close()
	validator.draft = draft
	if !validator.ValidateForm() {
		return nil, &ValidationError{
			Fields: validator.FieldErrors(),
			Form:   validator.FormError(),
		}
	}

	record := entity.NewTransaction(
		input.OwnerID,
		draft.Kind,
		strings.TrimSpace(draft.Name),
		draft.Subtype,
		draft.CategoryID,
		valueobject.ParseAmount(draft.PlannedAmount),
		valueobject.ParseAmount(draft.ActualAmount),
		draft.PlannedDate,
		draft.ActualDate,
	)

	if err := uc.transactionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: record}, nil
}
