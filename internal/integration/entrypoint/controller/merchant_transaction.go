package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	merchanttransaction "github.com/farmx/ledger-backend/internal/application/usecase/merchant_transaction"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// MerchantTransactionController handles resale endpoints.
type MerchantTransactionController struct {
	listUseCase             *merchanttransaction.ListMerchantTransactionsUseCase
	createUseCase           *merchanttransaction.CreateMerchantTransactionUseCase
	getUseCase              *merchanttransaction.GetMerchantTransactionUseCase
	getByTransactionUseCase *merchanttransaction.GetByTransactionUseCase
	updateUseCase           *merchanttransaction.UpdateMerchantTransactionUseCase
	deleteUseCase           *merchanttransaction.DeleteMerchantTransactionUseCase
}

// NewMerchantTransactionController creates a new merchant transaction controller instance.
func NewMerchantTransactionController(
	listUseCase *merchanttransaction.ListMerchantTransactionsUseCase,
	createUseCase *merchanttransaction.CreateMerchantTransactionUseCase,
	getUseCase *merchanttransaction.GetMerchantTransactionUseCase,
	getByTransactionUseCase *merchanttransaction.GetByTransactionUseCase,
	updateUseCase *merchanttransaction.UpdateMerchantTransactionUseCase,
	deleteUseCase *merchanttransaction.DeleteMerchantTransactionUseCase,
) *MerchantTransactionController {
	return &MerchantTransactionController{
		listUseCase:             listUseCase,
		createUseCase:           createUseCase,
		getUseCase:              getUseCase,
		getByTransactionUseCase: getByTransactionUseCase,
		updateUseCase:           updateUseCase,
		deleteUseCase:           deleteUseCase,
	}
}

// List handles GET /merchant-transactions requests.
func (c *MerchantTransactionController) List(ctx *gin.Context) {
	var query dto.ListMerchantTransactionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), merchanttransaction.ListMerchantTransactionsInput{
		VendorID:  vendorID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantTransactionListResponse(output))
}

// Create handles POST /merchant-transactions requests.
func (c *MerchantTransactionController) Create(ctx *gin.Context) {
	var req dto.MerchantTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	vendorID, ok := parseID(ctx, req.VendorID, "vendor")
	if !ok {
		return
	}
	sourceID, ok := parseOptionalID(ctx, req.TransactionID, "transaction")
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

	created, err := c.createUseCase.Execute(ctx.Request.Context(), merchanttransaction.CreateMerchantTransactionInput{
		VendorID:      vendorID,
		TransactionID: sourceID,
		FarmerName:    req.FarmerName,
		Date:          date,
		Quantities:    quantities,
		Remarks:       req.Remarks,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMerchantTransactionResponse(created))
}

// Get handles GET /merchant-transactions/:id requests.
func (c *MerchantTransactionController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "merchant transaction")
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantTransactionResponse(found))
}

// GetByTransaction handles GET /merchant-transactions/by-transaction/:transactionId requests.
func (c *MerchantTransactionController) GetByTransaction(ctx *gin.Context) {
	transactionID, ok := parseIDParam(ctx, "transactionId", "transaction")
	if !ok {
		return
	}

	found, err := c.getByTransactionUseCase.Execute(ctx.Request.Context(), transactionID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantTransactionResponse(found))
}

// Update handles PUT /merchant-transactions/:id requests.
func (c *MerchantTransactionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "merchant transaction")
	if !ok {
		return
	}

	var req dto.MerchantTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	vendorID, ok := parseID(ctx, req.VendorID, "vendor")
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

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), merchanttransaction.UpdateMerchantTransactionInput{
		ID:         id,
		VendorID:   vendorID,
		FarmerName: req.FarmerName,
		Date:       date,
		Quantities: quantities,
		Remarks:    req.Remarks,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMerchantTransactionResponse(updated))
}

// Delete handles DELETE /merchant-transactions/:id requests.
func (c *MerchantTransactionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "merchant transaction")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
