package error

import "errors"

// Farmer transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a farmer transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidPaymentStatus is returned when the payment status is not pending or paid.
	ErrInvalidPaymentStatus = errors.New("payment status must be pending or paid")

	// ErrMissingTransactionFields is returned when required transaction fields are absent.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")
)

// TransactionErrorCode defines error codes for farmer transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound       TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidPaymentStatus      TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionFields  TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionVendorNotFound TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionVendorMismatch TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionInvalidInput   TransactionErrorCode = "TXN-010006"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternal TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a farmer transaction error with code and message.
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
