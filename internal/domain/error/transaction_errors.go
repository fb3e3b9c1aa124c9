// Package error defines domain-specific errors for the application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionKind is returned when the transaction kind is invalid.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidSubtype is returned when the subtype is not allowed for the kind.
	ErrInvalidSubtype = errors.New("invalid subtype for transaction kind")

	// ErrTransactionInvalid is returned when the record fails form validation.
	// The per-field messages travel alongside in the validator's error map.
	ErrTransactionInvalid = errors.New("transaction failed validation")

	// ErrMissingOwner is returned when no authenticated owner is present at
	// submit time. This is a precondition failure: it blocks the write before
	// any store call is made.
	ErrMissingOwner = errors.New("owner identity is required")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionKind TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidSubtype         TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionInvalid     TransactionErrorCode = "TXN-010003"
	ErrCodeMissingOwner           TransactionErrorCode = "TXN-010004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
