package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// handleError renders domain errors with their codes and anything else as a 500.
func handleError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := getStatusCodeForLedgerError(ledgerErr.Code)
		if status == http.StatusInternalServerError {
			slog.Error("Ledger data fault", "code", ledgerErr.Code, "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var vendorErr *domainerror.VendorError
	if errors.As(err, &vendorErr) {
		ctx.JSON(getStatusCodeForVendorError(vendorErr.Code), dto.ErrorResponse{
			Error: vendorErr.Message,
			Code:  string(vendorErr.Code),
		})
		return
	}

	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(getStatusCodeForTransactionError(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	var merchantErr *domainerror.MerchantError
	if errors.As(err, &merchantErr) {
		ctx.JSON(getStatusCodeForMerchantError(merchantErr.Code), dto.ErrorResponse{
			Error: merchantErr.Message,
			Code:  string(merchantErr.Code),
		})
		return
	}

	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		slog.Error("Dashboard request failed", "code", dashboardErr.Code, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	slog.Error("Unhandled request error",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeUnknownPaymentType,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidDateRange:
		return http.StatusBadRequest
	case domainerror.ErrCodeAmbiguousCommissionWindow:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForVendorError maps vendor error codes to HTTP status codes.
func getStatusCodeForVendorError(code domainerror.VendorErrorCode) int {
	switch code {
	case domainerror.ErrCodeVendorNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidVendorKind,
		domainerror.ErrCodeVendorNameRequired,
		domainerror.ErrCodeVendorKindMismatch:
		return http.StatusBadRequest
	case domainerror.ErrCodeVendorInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForTransactionError maps farmer transaction error codes to HTTP status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeTransactionVendorNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPaymentStatus,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeTransactionVendorMismatch,
		domainerror.ErrCodeTransactionInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForMerchantError maps merchant error codes to HTTP status codes.
func getStatusCodeForMerchantError(code domainerror.MerchantErrorCode) int {
	switch code {
	case domainerror.ErrCodeMerchantTransactionNotFound,
		domainerror.ErrCodeMerchantVendorNotFound,
		domainerror.ErrCodeSourceTransactionNotFound,
		domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeCommissionNotFound,
		domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMerchantVendorMismatch,
		domainerror.ErrCodeMerchantInvalidInput,
		domainerror.ErrCodeInvalidExpense,
		domainerror.ErrCodeInvalidPaymentAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeAlreadyResold:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondBindingError reports a request that failed to bind. Failures of the
// ledger binding tags carry the matching domain code; others use fallback.
func respondBindingError(ctx *gin.Context, err error, fallback string) {
	code := fallback
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		switch validationErrs[0].Tag() {
		case dto.TagLedgerDate:
			code = string(domainerror.ErrCodeInvalidDate)
		case dto.TagPaymentType:
			code = string(domainerror.ErrCodeUnknownPaymentType)
		case dto.TagPaymentStatus:
			code = string(domainerror.ErrCodeInvalidPaymentStatus)
		case dto.TagVendorKind:
			code = string(domainerror.ErrCodeInvalidVendorKind)
		}
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request: " + err.Error(),
		Code:  code,
	})
}

// parseIDParam reads a UUID path parameter, answering 400 when it is malformed.
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	return parseID(ctx, ctx.Param(name), label)
}

// parseID reads a UUID from a body or query field.
func parseID(ctx *gin.Context, raw, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalID reads an optional UUID, treating nil and empty as absent.
func parseOptionalID(ctx *gin.Context, raw *string, label string) (*uuid.UUID, bool) {
	id, err := dto.ParseOptionalUUID(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return nil, false
	}
	return id, true
}
