// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-app/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. The
// three record kinds share one table, discriminated by Kind; (month, year)
// columns materialize the partition key so period queries never touch the
// date columns.
type TransactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_owner_kind_period"`
	Kind       string    `gorm:"type:varchar(12);not null;index:idx_transactions_owner_kind_period"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Subtype    string    `gorm:"type:varchar(12)"`
	CategoryID string    `gorm:"type:varchar(60);index"`

	PlannedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ActualAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PlannedDate   *time.Time      `gorm:"type:date"`
	ActualDate    *time.Time      `gorm:"type:date"`

	EffectiveAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	EffectiveDate   time.Time       `gorm:"type:date;not null"`
	Month           int             `gorm:"not null;index:idx_transactions_owner_kind_period"`
	Year            int             `gorm:"not null;index:idx_transactions_owner_kind_period"`
	Realized        bool            `gorm:"default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Kind:            entity.TransactionKind(m.Kind),
		Name:            m.Name,
		Subtype:         entity.Subtype(m.Subtype),
		CategoryID:      m.CategoryID,
		PlannedAmount:   m.PlannedAmount,
		ActualAmount:    m.ActualAmount,
		PlannedDate:     m.PlannedDate,
		ActualDate:      m.ActualDate,
		EffectiveAmount: m.EffectiveAmount,
		EffectiveDate:   m.EffectiveDate,
		Month:           m.Month,
		Year:            m.Year,
		Realized:        m.Realized,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		OwnerID:         transaction.OwnerID,
		Kind:            string(transaction.Kind),
		Name:            transaction.Name,
		Subtype:         string(transaction.Subtype),
		CategoryID:      transaction.CategoryID,
		PlannedAmount:   transaction.PlannedAmount,
		ActualAmount:    transaction.ActualAmount,
		PlannedDate:     transaction.PlannedDate,
		ActualDate:      transaction.ActualDate,
		EffectiveAmount: transaction.EffectiveAmount,
		EffectiveDate:   transaction.EffectiveDate,
		Month:           transaction.Month,
		Year:            transaction.Year,
		Realized:        transaction.Realized,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
