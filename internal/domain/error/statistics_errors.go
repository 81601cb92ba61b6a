// Package error defines domain-specific errors for the LedgerBook application.
package error

import "errors"

// Statistics domain errors. Within the aggregation itself there are no
// recoverable error paths: empty data is a valid zero result. These errors
// cover only the validation that runs before aggregation.
var (
	// ErrMissingStatisticsRange is returned when a required start or end date
	// is absent on the daily/trend paths.
	ErrMissingStatisticsRange = errors.New("start_date and end_date are required")

	// ErrInvalidStatisticsDate is returned when a required date is malformed.
	ErrInvalidStatisticsDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// StatisticsErrorCode defines error codes for statistics errors.
type StatisticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStatisticsRange StatisticsErrorCode = "STAT-010001"
	ErrCodeInvalidStatisticsDate  StatisticsErrorCode = "STAT-010002"
)

// StatisticsError represents a statistics error with code and message.
type StatisticsError struct {
	Code    StatisticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatisticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatisticsError) Unwrap() error {
	return e.Err
}

// NewStatisticsError creates a new StatisticsError with the given code and message.
func NewStatisticsError(code StatisticsErrorCode, message string, err error) *StatisticsError {
	return &StatisticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
