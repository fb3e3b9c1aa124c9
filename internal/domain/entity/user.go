// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	InitialSetup bool // true once the setup wizard has been completed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User. InitialSetup starts false and is flipped by the
// setup wizard exactly once.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		InitialSetup: false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Session is the minimal identity persisted between cold starts. It mirrors
// what gets written under the fixed session key: just enough to re-resolve
// the full profile on restore.
type Session struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
}
