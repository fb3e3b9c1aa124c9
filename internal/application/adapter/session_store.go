// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/financas-app/backend/internal/domain/entity"
)

// SessionStore persists the minimal identity under a fixed key so it can be
// read back on cold start. Save overwrites any previous session; Load returns
// domain ErrNoSession when nothing is persisted.
type SessionStore interface {
	Save(ctx context.Context, session entity.Session) error
	Load(ctx context.Context) (*entity.Session, error)
	Clear(ctx context.Context) error
}
