// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
)

// CategoryRepository defines persistence operations for custom categories.
// Built-in categories never reach the store; only user-created rows do.
type CategoryRepository interface {
	// Create persists a new custom category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByOwner retrieves all custom categories for a user, across kinds.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error)

	// FindByOwnerAndKind retrieves the user's custom categories of one kind.
	FindByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind entity.CategoryKind) ([]*entity.Category, error)

	// FindByID retrieves a custom category by its kind-scoped slug.
	// Returns domain ErrCategoryNotFound when absent.
	FindByID(ctx context.Context, ownerID uuid.UUID, kind entity.CategoryKind, id string) (*entity.Category, error)

	// Delete removes a custom category by its kind-scoped slug.
	Delete(ctx context.Context, ownerID uuid.UUID, kind entity.CategoryKind, id string) error
}
