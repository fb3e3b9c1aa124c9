// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing one kind's records
// of a (month, year) partition.
type ListTransactionsInput struct {
	OwnerID uuid.UUID
	Kind    entity.TransactionKind
	Period  entity.Period
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase loads the owner's records of one kind for a period.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	switch input.Kind {
	case entity.TransactionKindIncome, entity.TransactionKindExpense, entity.TransactionKindInvestment:
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be income, expense or investment",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if !input.Period.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidPeriod,
		)
	}

	transactions, err := uc.transactionRepo.FindByPeriod(ctx, input.OwnerID, input.Kind, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
