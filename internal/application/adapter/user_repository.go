// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID. Returns domain ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns nil, nil when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether an account with the email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// MarkInitialSetupDone flips the user's initial-setup flag to true.
	MarkInitialSetupDone(ctx context.Context, id uuid.UUID) error
}
