// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/financas-app/backend/internal/application/adapter"
)

// LogoutUserUseCase clears the persisted session. Tokens are stateless, so
// logout only removes the stored identity.
type LogoutUserUseCase struct {
	sessionStore adapter.SessionStore
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessionStore adapter.SessionStore) *LogoutUserUseCase {
	return &LogoutUserUseCase{sessionStore: sessionStore}
}

// Execute performs the logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) error {
	if err := uc.sessionStore.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
