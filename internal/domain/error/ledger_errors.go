// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Ledger computation errors.
var (
	// ErrInvalidQuantity is returned when a quantity input is negative or not a number.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrAmbiguousCommissionWindow is returned when commission over a multi-date window is saved.
	ErrAmbiguousCommissionWindow = errors.New("commission window spans more than one date")

	// ErrUnknownPaymentType is returned when a payment type label is not recognized.
	ErrUnknownPaymentType = errors.New("unknown payment type")

	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)

// LedgerErrorCode defines error codes for ledger computation errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity    LedgerErrorCode = "LDG-010001"
	ErrCodeUnknownPaymentType LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidDate        LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidDateRange   LedgerErrorCode = "LDG-010004"

	// Window errors (02XXXX)
	ErrCodeAmbiguousCommissionWindow LedgerErrorCode = "LDG-020001"

	// Stored data errors (99XXXX)
	ErrCodeStoredPaymentTypeInvalid LedgerErrorCode = "LDG-990001"
)

// LedgerError represents a ledger computation error with code and message.
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
