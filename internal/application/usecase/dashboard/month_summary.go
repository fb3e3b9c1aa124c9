// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

// GetMonthSummaryInput represents the input for the monthly aggregation.
type GetMonthSummaryInput struct {
	OwnerID uuid.UUID
	Period  entity.Period
}

// MonthSummary is the aggregate result for one (owner, month, year): the
// categorized sub-totals, the derived totals, and the raw matched record
// lists for list rendering.
type MonthSummary struct {
	Period entity.Period

	RecurringIncome  decimal.Decimal
	ExtraIncome      decimal.Decimal
	FixedExpenses    decimal.Decimal
	VariableExpenses decimal.Decimal

	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalInvestments decimal.Decimal
	AvailableBalance decimal.Decimal

	Incomes     []*entity.Transaction
	Expenses    []*entity.Transaction
	Investments []*entity.Transaction
}

// GetMonthSummaryOutput represents the output of the monthly aggregation.
type GetMonthSummaryOutput struct {
	Summary *MonthSummary
}

// GetMonthSummaryUseCase loads the owner's income, expense and investment
// records for a period and computes the categorized totals. The three reads
// address disjoint collections and are dispatched concurrently; a failure of
// any one aborts the whole aggregation so a balance is never computed from
// two of three sources. The use case is stateless and idempotent per call;
// re-invocation policy (period change, view focus) belongs to the caller.
type GetMonthSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the aggregation.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	if !input.Period.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidPeriod,
		)
	}

	var incomes, expenses, investments []*entity.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = uc.transactionRepo.FindByPeriod(gctx, input.OwnerID, entity.TransactionKindIncome, input.Period)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = uc.transactionRepo.FindByPeriod(gctx, input.OwnerID, entity.TransactionKindExpense, input.Period)
		return err
	})
	g.Go(func() error {
		var err error
		investments, err = uc.transactionRepo.FindByPeriod(gctx, input.OwnerID, entity.TransactionKindInvestment, input.Period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeSummaryUnavailable,
			"monthly summary unavailable",
			err,
		)
	}

	summary := &MonthSummary{
		Period:      input.Period,
		Incomes:     incomes,
		Expenses:    expenses,
		Investments: investments,
	}

	for _, t := range incomes {
		switch t.Subtype {
		case entity.SubtypeRecurring:
			summary.RecurringIncome = summary.RecurringIncome.Add(t.EffectiveAmount)
		case entity.SubtypeExtra:
			summary.ExtraIncome = summary.ExtraIncome.Add(t.EffectiveAmount)
		}
	}
	for _, t := range expenses {
		switch t.Subtype {
		case entity.SubtypeFixed:
			summary.FixedExpenses = summary.FixedExpenses.Add(t.EffectiveAmount)
		case entity.SubtypeVariable:
			summary.VariableExpenses = summary.VariableExpenses.Add(t.EffectiveAmount)
		}
	}
	for _, t := range investments {
		summary.TotalInvestments = summary.TotalInvestments.Add(t.EffectiveAmount)
	}

	summary.TotalIncome = summary.RecurringIncome.Add(summary.ExtraIncome)
	summary.TotalExpenses = summary.FixedExpenses.Add(summary.VariableExpenses)
	summary.AvailableBalance = summary.TotalIncome.
		Sub(summary.TotalExpenses).
		Sub(summary.TotalInvestments)

	return &GetMonthSummaryOutput{Summary: summary}, nil
}
