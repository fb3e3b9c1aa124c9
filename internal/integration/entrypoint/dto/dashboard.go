// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financas-app/backend/internal/application/usecase/dashboard"
	"github.com/financas-app/backend/internal/domain/valueobject"
)

// MonthSummaryResponse represents the monthly aggregation in API responses.
// All amounts use the comma-decimal display format.
type MonthSummaryResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`

	RecurringIncome  string `json:"recurring_income"`
	ExtraIncome      string `json:"extra_income"`
	FixedExpenses    string `json:"fixed_expenses"`
	VariableExpenses string `json:"variable_expenses"`

	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	TotalInvestments string `json:"total_investments"`
	AvailableBalance string `json:"available_balance"`

	Incomes     []TransactionResponse `json:"incomes"`
	Expenses    []TransactionResponse `json:"expenses"`
	Investments []TransactionResponse `json:"investments"`
}

// ToMonthSummaryResponse converts a MonthSummary to its DTO.
func ToMonthSummaryResponse(s *dashboard.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:            s.Period.Month,
		Year:             s.Period.Year,
		Label:            s.Period.Label(),
		RecurringIncome:  valueobject.FormatAmount(s.RecurringIncome),
		ExtraIncome:      valueobject.FormatAmount(s.ExtraIncome),
		FixedExpenses:    valueobject.FormatAmount(s.FixedExpenses),
		VariableExpenses: valueobject.FormatAmount(s.VariableExpenses),
		TotalIncome:      valueobject.FormatAmount(s.TotalIncome),
		TotalExpenses:    valueobject.FormatAmount(s.TotalExpenses),
		TotalInvestments: valueobject.FormatAmount(s.TotalInvestments),
		AvailableBalance: valueobject.FormatAmount(s.AvailableBalance),
		Incomes:          ToTransactionListResponse(s.Incomes).Transactions,
		Expenses:         ToTransactionListResponse(s.Expenses).Transactions,
		Investments:      ToTransactionListResponse(s.Investments).Transactions,
	}
}
