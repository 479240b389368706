package error

import "errors"

// Vendor domain errors.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrInvalidVendorKind is returned when the vendor type is neither farmer nor merchant.
	ErrInvalidVendorKind = errors.New("vendor type must be farmer or merchant")

	// ErrVendorNameRequired is returned when the vendor name is empty.
	ErrVendorNameRequired = errors.New("vendor name is required")

	// ErrVendorKindMismatch is returned when a vendor of the wrong kind is referenced.
	ErrVendorKindMismatch = errors.New("vendor has the wrong type for this operation")

	// ErrVendorInUse is returned when a vendor with recorded transactions is deleted.
	ErrVendorInUse = errors.New("vendor has recorded transactions")
)

// VendorErrorCode defines error codes for vendor errors.
// Format: VND-XXYYYY where XX is category and YYYY is specific error.
type VendorErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeVendorNotFound     VendorErrorCode = "VND-010001"
	ErrCodeInvalidVendorKind  VendorErrorCode = "VND-010002"
	ErrCodeVendorNameRequired VendorErrorCode = "VND-010003"
	ErrCodeVendorKindMismatch VendorErrorCode = "VND-010004"

	// Conflict errors (02XXXX)
	ErrCodeVendorInUse VendorErrorCode = "VND-020001"
)

// VendorError represents a vendor error with code and message.
type VendorError struct {
	Code    VendorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VendorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VendorError) Unwrap() error {
	return e.Err
}

// NewVendorError creates a new VendorError with the given code and message.
func NewVendorError(code VendorErrorCode, message string, err error) *VendorError {
	return &VendorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
