// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"testing"

	domainerror "github.com/financas-app/backend/internal/domain/error"
)

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := service.HashPassword("secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "secret1" {
			t.Fatal("password must not be stored in plain text")
		}

		if err := service.VerifyPassword(hash, "secret1"); err != nil {
			t.Errorf("expected matching password to verify, got %v", err)
		}
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := service.HashPassword("secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.VerifyPassword(hash, "wrong"); err == nil {
			t.Error("expected verification to fail")
		}
	})

	t.Run("strength requires six characters", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("12345"); !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
		if err := service.ValidatePasswordStrength("123456"); err != nil {
			t.Errorf("expected six characters to pass, got %v", err)
		}
	})
}
