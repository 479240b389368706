package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmx/ledger-backend/internal/application/usecase/transaction"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// TransactionController handles farmer transaction endpoints.
type TransactionController struct {
	listUseCase          *transaction.ListTransactionsUseCase
	createUseCase        *transaction.CreateTransactionUseCase
	getUseCase           *transaction.GetTransactionUseCase
	updateUseCase        *transaction.UpdateTransactionUseCase
	deleteUseCase        *transaction.DeleteTransactionUseCase
	paymentStatusUseCase *transaction.UpdatePaymentStatusUseCase
	pendingAmountUseCase *transaction.GetPendingAmountUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	paymentStatusUseCase *transaction.UpdatePaymentStatusUseCase,
	pendingAmountUseCase *transaction.GetPendingAmountUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		getUseCase:           getUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		paymentStatusUseCase: paymentStatusUseCase,
		pendingAmountUseCase: pendingAmountUseCase,
	}
}

// List handles GET /transactions requests.
// Without start_date and end_date only today's transactions are returned.
func (c *TransactionController) List(ctx *gin.Context) {
	var query dto.ListTransactionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeTransactionInvalidInput))
		return
	}

	startDate, endDate, err := query.Dates()
	if err != nil {
		handleError(ctx, err)
		return
	}
	vendorID, ok := parseOptionalID(ctx, &query.VendorID, "vendor")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		VendorID:   vendorID,
		VendorKind: query.VendorType,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	vendorID, ok := parseID(ctx, req.VendorID, "vendor")
	if !ok {
		return
	}
	merchantID, ok := parseOptionalID(ctx, req.MerchantVendorID, "merchant vendor")
	if !ok {
		return
	}
	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}
	quantities, err := req.QuantityFields()
	if err != nil {
		handleError(ctx, err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		VendorID:         vendorID,
		Date:             date,
		Quantities:       quantities,
		Remarks:          req.Remarks,
		MerchantVendorID: merchantID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(found))
}

// Update handles PUT /transactions/:id requests. Every field is replaced and
// the linked resale follows the merchant_vendor_id field.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	vendorID, ok := parseID(ctx, req.VendorID, "vendor")
	if !ok {
		return
	}
	merchantID, ok := parseOptionalID(ctx, req.MerchantVendorID, "merchant vendor")
	if !ok {
		return
	}
	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}
	quantities, err := req.QuantityFields()
	if err != nil {
		handleError(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:               id,
		VendorID:         vendorID,
		Date:             date,
		Quantities:       quantities,
		Remarks:          req.Remarks,
		MerchantVendorID: merchantID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdatePaymentStatus handles PATCH /transactions/:id/payment-status requests.
func (c *TransactionController) UpdatePaymentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeInvalidPaymentStatus))
		return
	}

	updated, err := c.paymentStatusUseCase.Execute(ctx.Request.Context(), transaction.UpdatePaymentStatusInput{
		ID:     id,
		Status: req.PaymentStatus,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// PendingAmount handles GET /transactions/pending-amount/:vendorId requests.
func (c *TransactionController) PendingAmount(ctx *gin.Context) {
	vendorID, ok := parseIDParam(ctx, "vendorId", "vendor")
	if !ok {
		return
	}

	output, err := c.pendingAmountUseCase.Execute(ctx.Request.Context(), vendorID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingAmountResponse(output))
}
