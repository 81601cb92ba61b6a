// Package error defines domain-specific errors for the LedgerBook application.
package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill is not found in the system.
	ErrBillNotFound = errors.New("bill not found")

	// ErrNotBillCreator is returned when a user other than the creator tries
	// to modify or delete a bill.
	ErrNotBillCreator = errors.New("only the bill creator can modify it")

	// ErrInvalidBillID is returned when a bill id is malformed.
	ErrInvalidBillID = errors.New("invalid bill ID")

	// ErrInvalidBillType is returned when the bill type is not income or expense.
	ErrInvalidBillType = errors.New("invalid bill type")

	// ErrInvalidBillAmount is returned when the bill amount is not positive.
	ErrInvalidBillAmount = errors.New("bill amount must be positive")

	// ErrInvalidBillDate is returned when the bill date is malformed.
	ErrInvalidBillDate = errors.New("invalid bill date")

	// ErrBillCategoryNotFound is returned when the referenced category does not exist.
	ErrBillCategoryNotFound = errors.New("category not found")

	// ErrBillCategoryTypeMismatch is returned when the category type does not
	// match the bill type.
	ErrBillCategoryTypeMismatch = errors.New("category type does not match bill type")
)

// BillErrorCode defines error codes for bill errors.
// Format: BILL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBillID            BillErrorCode = "BILL-010001"
	ErrCodeInvalidBillType          BillErrorCode = "BILL-010002"
	ErrCodeInvalidBillAmount        BillErrorCode = "BILL-010003"
	ErrCodeInvalidBillDate          BillErrorCode = "BILL-010004"
	ErrCodeBillCategoryNotFound     BillErrorCode = "BILL-010005"
	ErrCodeBillCategoryTypeMismatch BillErrorCode = "BILL-010006"

	// Access errors (02XXXX)
	ErrCodeBillNotFound   BillErrorCode = "BILL-020001"
	ErrCodeNotBillCreator BillErrorCode = "BILL-020002"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
