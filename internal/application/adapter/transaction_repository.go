// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
)

// TransactionRepository defines persistence operations for transaction
// records. The three kinds live in per-kind collections scoped by owner;
// every query carries the kind explicitly.
type TransactionRepository interface {
	// Create persists a new transaction record.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByPeriod retrieves the owner's records of one kind for a
	// (month, year) partition.
	FindByPeriod(ctx context.Context, ownerID uuid.UUID, kind entity.TransactionKind, period entity.Period) ([]*entity.Transaction, error)

	// CountByCategory counts the owner's records of one kind referencing a
	// category slug. Used by the category deletion guard.
	CountByCategory(ctx context.Context, ownerID uuid.UUID, kind entity.TransactionKind, categoryID string) (int64, error)
}
