// Package error defines domain-specific errors for the application.
package error

import (
	"errors"
	"fmt"
)

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the catalog.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateCategory is returned when a new category collides, by slug or
	// case-insensitive name, with an existing category of the same kind.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrCategoryNotCustom is returned when attempting to delete a built-in category.
	ErrCategoryNotCustom = errors.New("built-in categories cannot be deleted")

	// ErrCategoryInUse is returned when deleting a category still referenced by transactions.
	ErrCategoryInUse = errors.New("category is referenced by transactions")

	// ErrInvalidCategoryKind is returned when the category kind is invalid.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrEmptyCategoryName is returned when the category name is empty or whitespace.
	ErrEmptyCategoryName = errors.New("category name is required")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeEmptyCategoryName   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryKind CategoryErrorCode = "CAT-010002"
	ErrCodeDuplicateCategory   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound    CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNotCustom   CategoryErrorCode = "CAT-010005"
	ErrCodeCategoryInUse       CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CategoryInUseError is the deletion guard failure. It reports how many
// transactions still reference the category so the caller can tell the user
// what is blocking the delete.
type CategoryInUseError struct {
	CategoryID string
	Count      int
}

// Error implements the error interface.
func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q is referenced by %d transaction(s)", e.CategoryID, e.Count)
}

// Unwrap lets errors.Is match ErrCategoryInUse.
func (e *CategoryInUseError) Unwrap() error {
	return ErrCategoryInUse
}
