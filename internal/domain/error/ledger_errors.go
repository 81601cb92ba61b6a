// Package error defines domain-specific errors for the LedgerBook application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrLedgerNotFound is returned when a ledger is not found in the system.
	ErrLedgerNotFound = errors.New("ledger not found")

	// ErrLedgerAccessDenied is returned when the caller lacks ownership or
	// membership of the ledger.
	ErrLedgerAccessDenied = errors.New("access to ledger denied")

	// ErrInvalidLedgerID is returned when a ledger id is malformed.
	ErrInvalidLedgerID = errors.New("invalid ledger ID")

	// ErrLedgerNameRequired is returned when a ledger name is empty.
	ErrLedgerNameRequired = errors.New("ledger name is required")
)

// LedgerErrorCode defines error codes for ledger errors.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLedgerID    LedgerErrorCode = "LDG-010001"
	ErrCodeLedgerNameRequired LedgerErrorCode = "LDG-010002"

	// Access errors (02XXXX)
	ErrCodeLedgerNotFound     LedgerErrorCode = "LDG-020001"
	ErrCodeLedgerAccessDenied LedgerErrorCode = "LDG-020002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
