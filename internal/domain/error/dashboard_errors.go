package error

import "errors"

// Dashboard and report errors.
var (
	// ErrDashboardUnavailable is returned when dashboard data cannot be loaded.
	ErrDashboardUnavailable = errors.New("dashboard data unavailable")

	// ErrReportRender is returned when a report workbook cannot be produced.
	ErrReportRender = errors.New("failed to render report")
)

// DashboardErrorCode defines error codes for dashboard and report errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
	ErrCodeReportRenderError      DashboardErrorCode = "DSH-990002"
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
