// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

// RestoreSessionOutput represents the output of a session restore.
type RestoreSessionOutput struct {
	User *entity.User
}

// RestoreSessionUseCase reads the persisted session on cold start and reloads
// the user profile, including the initial-setup flag that decides whether the
// wizard runs. A stale session pointing at a removed user is cleared.
type RestoreSessionUseCase struct {
	userRepo     adapter.UserRepository
	sessionStore adapter.SessionStore
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase instance.
func NewRestoreSessionUseCase(
	userRepo adapter.UserRepository,
	sessionStore adapter.SessionStore,
) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

// Execute performs the session restore.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context) (*RestoreSessionOutput, error) {
	session, err := uc.sessionStore.Load(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoSession) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeNoSession,
				"no persisted session",
				domainerror.ErrNoSession,
			)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			// Stale session: the user no longer exists.
			_ = uc.sessionStore.Clear(ctx)
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"session user no longer exists",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &RestoreSessionOutput{User: user}, nil
}
