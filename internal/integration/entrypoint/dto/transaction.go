// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financas-app/backend/internal/application/usecase/transaction"
	"github.com/financas-app/backend/internal/domain/entity"
	"github.com/financas-app/backend/internal/domain/valueobject"
)

// CreateTransactionRequest represents the request body for creating a
// transaction record. Amounts arrive in their masked form ("1.234,56" digits
// only survive the mask), dates as "2006-01-02".
type CreateTransactionRequest struct {
	Kind          string  `json:"kind" binding:"required,oneof=income expense investment"`
	Name          string  `json:"name" binding:"required"`
	Subtype       string  `json:"subtype"`
	CategoryID    string  `json:"category_id"`
	PlannedAmount string  `json:"planned_amount"`
	ActualAmount  string  `json:"actual_amount"`
	PlannedDate   *string `json:"planned_date"`
	ActualDate    *string `json:"actual_date"`
}

// TransactionResponse represents a single transaction record in API responses.
// Amounts are rendered in the comma-decimal display format.
type TransactionResponse struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	Name            string     `json:"name"`
	Subtype         string     `json:"subtype,omitempty"`
	CategoryID      string     `json:"category_id,omitempty"`
	PlannedAmount   string     `json:"planned_amount"`
	ActualAmount    string     `json:"actual_amount"`
	PlannedDate     *time.Time `json:"planned_date,omitempty"`
	ActualDate      *time.Time `json:"actual_date,omitempty"`
	EffectiveAmount string     `json:"effective_amount"`
	EffectiveDate   time.Time  `json:"effective_date"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	Realized        bool       `json:"realized"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ValidationErrorResponse carries the per-field messages of a rejected draft.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ToDraft converts the request into a transaction draft.
func (r CreateTransactionRequest) ToDraft() transaction.Draft {
	return transaction.Draft{
		Kind:          entity.TransactionKind(r.Kind),
		Name:          r.Name,
		Subtype:       entity.Subtype(r.Subtype),
		CategoryID:    r.CategoryID,
		PlannedAmount: r.PlannedAmount,
		ActualAmount:  r.ActualAmount,
		PlannedDate:   parseDate(r.PlannedDate),
		ActualDate:    parseDate(r.ActualDate),
	}
}

// ToTransactionResponse converts a domain Transaction entity to a DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID.String(),
		Kind:            string(t.Kind),
		Name:            t.Name,
		Subtype:         string(t.Subtype),
		CategoryID:      t.CategoryID,
		PlannedAmount:   valueobject.FormatAmount(t.PlannedAmount),
		ActualAmount:    valueobject.FormatAmount(t.ActualAmount),
		PlannedDate:     t.PlannedDate,
		ActualDate:      t.ActualDate,
		EffectiveAmount: valueobject.FormatAmount(t.EffectiveAmount),
		EffectiveDate:   t.EffectiveDate,
		Month:           t.Month,
		Year:            t.Year,
		Realized:        t.Realized,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionListResponse converts a record list to a DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: out,
	}
}

// parseDate parses an optional "2006-01-02" date; malformed input is dropped
// so the draft validator reports the missing date instead.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &d
}
