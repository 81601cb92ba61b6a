// Package error defines domain-specific errors for the LedgerBook application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryID is returned when a category id is malformed.
	ErrInvalidCategoryID = errors.New("invalid category ID")

	// ErrInvalidCategoryType is returned when the category type is not income or expense.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryNameRequired is returned when a category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrSystemCategoryImmutable is returned when a caller tries to modify a
	// system default category.
	ErrSystemCategoryImmutable = errors.New("system categories cannot be modified")

	// ErrCategoryNestingTooDeep is returned when a child category is given a
	// parent that is itself a child.
	ErrCategoryNestingTooDeep = errors.New("categories nest at most one level deep")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryID      CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType    CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNestingTooDeep CategoryErrorCode = "CAT-010004"

	// Access errors (02XXXX)
	ErrCodeCategoryNotFound        CategoryErrorCode = "CAT-020001"
	ErrCodeSystemCategoryImmutable CategoryErrorCode = "CAT-020002"
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
