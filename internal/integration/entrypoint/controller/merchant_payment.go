package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	merchantpayment "github.com/farmx/ledger-backend/internal/application/usecase/merchant_payment"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// MerchantPaymentController handles the merchant running account.
type MerchantPaymentController struct {
	createUseCase *merchantpayment.CreatePaymentUseCase
	updateUseCase *merchantpayment.UpdatePaymentUseCase
	deleteUseCase *merchantpayment.DeletePaymentUseCase
	ledgerUseCase *merchantpayment.GetLedgerUseCase
}

// NewMerchantPaymentController creates a new merchant payment controller instance.
func NewMerchantPaymentController(
	createUseCase *merchantpayment.CreatePaymentUseCase,
	updateUseCase *merchantpayment.UpdatePaymentUseCase,
	deleteUseCase *merchantpayment.DeletePaymentUseCase,
	ledgerUseCase *merchantpayment.GetLedgerUseCase,
) *MerchantPaymentController {
	return &MerchantPaymentController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		ledgerUseCase: ledgerUseCase,
	}
}

// Create handles POST /merchant-payments requests.
func (c *MerchantPaymentController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	vendorID, ok := parseID(ctx, req.VendorID, "merchant")
	if !ok {
		return
	}
	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}
	amount, err := req.Amount.Decimal("amount")
	if err != nil {
		handleError(ctx, err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), merchantpayment.CreatePaymentInput{
		VendorID: vendorID,
		Date:     date,
		Type:     req.Type,
		Amount:   amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(created))
}

// Ledger handles GET /merchant-payments/merchant/:merchantId requests.
func (c *MerchantPaymentController) Ledger(ctx *gin.Context) {
	vendorID, ok := parseIDParam(ctx, "merchantId", "merchant")
	if !ok {
		return
	}

	var query dto.LedgerQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeInvalidDate))
		return
	}
	from, to, err := dto.DateRangeQuery{StartDate: query.From, EndDate: query.To}.Dates()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.ledgerUseCase.Execute(ctx.Request.Context(), merchantpayment.GetLedgerInput{
		VendorID: vendorID,
		From:     from,
		To:       to,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}

// Update handles PUT /merchant-payments/:id requests.
func (c *MerchantPaymentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "payment")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}
	amount, err := req.Amount.Decimal("amount")
	if err != nil {
		handleError(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), merchantpayment.UpdatePaymentInput{
		ID:     id,
		Date:   date,
		Type:   req.Type,
		Amount: amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(updated))
}

// Delete handles DELETE /merchant-payments/:id requests.
func (c *MerchantPaymentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "payment")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
