package error

import "errors"

// Merchant domain errors: resale transactions, expenses, commissions and payments.
var (
	// ErrMerchantTransactionNotFound is returned when a merchant transaction is not found.
	ErrMerchantTransactionNotFound = errors.New("merchant transaction not found")

	// ErrAlreadyResold is returned when a farmer transaction already has a merchant transaction.
	ErrAlreadyResold = errors.New("farmer transaction is already resold")

	// ErrExpenseNotFound is returned when a merchant expense is not found.
	ErrExpenseNotFound = errors.New("merchant expense not found")

	// ErrInvalidExpense is returned when an expense is missing a description or has a non-positive amount.
	ErrInvalidExpense = errors.New("expense requires a description and a positive amount")

	// ErrCommissionNotFound is returned when a merchant commission is not found.
	ErrCommissionNotFound = errors.New("merchant commission not found")

	// ErrPaymentNotFound is returned when a merchant payment is not found.
	ErrPaymentNotFound = errors.New("merchant payment not found")

	// ErrInvalidPaymentAmount is returned when a payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

// MerchantErrorCode defines error codes for merchant errors.
// Format: MRC-XXYYYY where XX is the area and YYYY is specific error.
type MerchantErrorCode string

const (
	// Resale transactions (01XXXX)
	ErrCodeMerchantTransactionNotFound MerchantErrorCode = "MRC-010001"
	ErrCodeMerchantVendorNotFound      MerchantErrorCode = "MRC-010002"
	ErrCodeMerchantVendorMismatch      MerchantErrorCode = "MRC-010003"
	ErrCodeSourceTransactionNotFound   MerchantErrorCode = "MRC-010004"
	ErrCodeAlreadyResold               MerchantErrorCode = "MRC-010005"
	ErrCodeMerchantInvalidInput        MerchantErrorCode = "MRC-010006"

	// Expenses (02XXXX)
	ErrCodeExpenseNotFound MerchantErrorCode = "MRC-020001"
	ErrCodeInvalidExpense  MerchantErrorCode = "MRC-020002"

	// Commissions (03XXXX)
	ErrCodeCommissionNotFound MerchantErrorCode = "MRC-030001"

	// Payments (04XXXX)
	ErrCodePaymentNotFound      MerchantErrorCode = "MRC-040001"
	ErrCodeInvalidPaymentAmount MerchantErrorCode = "MRC-040002"

	// Internal errors (99XXXX)
	ErrCodeMerchantInternal MerchantErrorCode = "MRC-990001"
)

// MerchantError represents a merchant error with code and message.
type MerchantError struct {
	Code    MerchantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MerchantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MerchantError) Unwrap() error {
	return e.Err
}

// NewMerchantError creates a new MerchantError with the given code and message.
func NewMerchantError(code MerchantErrorCode, message string, err error) *MerchantError {
	return &MerchantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
