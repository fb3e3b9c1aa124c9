// Package error defines domain-specific errors for the application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when the requested month is out of range.
	ErrInvalidPeriod = errors.New("month must be between 1 and 12")

	// ErrSummaryUnavailable is returned when any of the period reads failed.
	// Partial results are never merged: the summary is all-or-nothing.
	ErrSummaryUnavailable = errors.New("monthly summary unavailable")
)

// DashboardErrorCode defines error codes for dashboard errors.
type DashboardErrorCode string

const (
	ErrCodeInvalidPeriod      DashboardErrorCode = "DSH-010001"
	ErrCodeSummaryUnavailable DashboardErrorCode = "DSH-020001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
