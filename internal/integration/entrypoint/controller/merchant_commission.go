package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	merchantcommission "github.com/farmx/ledger-backend/internal/application/usecase/merchant_commission"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// MerchantCommissionController handles merchant commission endpoints.
type MerchantCommissionController struct {
	upsertUseCase  *merchantcommission.UpsertCommissionUseCase
	computeUseCase *merchantcommission.ComputeCommissionUseCase
	getUseCase     *merchantcommission.GetCommissionUseCase
	updateUseCase  *merchantcommission.UpdateCommissionUseCase
}

// NewMerchantCommissionController creates a new merchant commission controller instance.
func NewMerchantCommissionController(
	upsertUseCase *merchantcommission.UpsertCommissionUseCase,
	computeUseCase *merchantcommission.ComputeCommissionUseCase,
	getUseCase *merchantcommission.GetCommissionUseCase,
	updateUseCase *merchantcommission.UpdateCommissionUseCase,
) *MerchantCommissionController {
	return &MerchantCommissionController{
		upsertUseCase:  upsertUseCase,
		computeUseCase: computeUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
	}
}

// Upsert handles POST /merchant-commissions requests.
// It answers 201 when a new row was stored and 200 when an existing one was replaced.
func (c *MerchantCommissionController) Upsert(ctx *gin.Context) {
	var req dto.UpsertCommissionRequest
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
	weight, err := req.Weight.Decimal("weight")
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), merchantcommission.UpsertCommissionInput{
		VendorID: vendorID,
		Date:     date,
		Amount:   amount,
		Weight:   weight,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToCommissionResponse(output.Commission))
}

// Compute handles POST /merchant-commissions/compute requests.
func (c *MerchantCommissionController) Compute(ctx *gin.Context) {
	var req dto.ComputeCommissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	vendorID, ok := parseID(ctx, req.VendorID, "merchant")
	if !ok {
		return
	}
	startDate, endDate, err := dto.DateRangeQuery{StartDate: req.StartDate, EndDate: req.EndDate}.Dates()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), merchantcommission.ComputeCommissionInput{
		VendorID:  vendorID,
		StartDate: startDate,
		EndDate:   endDate,
		Persist:   req.Persist,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComputeCommissionResponse(output))
}

// Get handles GET /merchant-commissions/merchant/:merchantId/date/:date requests.
func (c *MerchantCommissionController) Get(ctx *gin.Context) {
	vendorID, ok := parseIDParam(ctx, "merchantId", "merchant")
	if !ok {
		return
	}
	date, err := valueobject.ParseDate(ctx.Param("date"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), merchantcommission.GetCommissionInput{
		VendorID: vendorID,
		Date:     date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionResponse(found))
}

// Update handles PUT /merchant-commissions/:id requests.
func (c *MerchantCommissionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "commission")
	if !ok {
		return
	}

	var req dto.UpdateCommissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	amount, err := req.Amount.Decimal("amount")
	if err != nil {
		handleError(ctx, err)
		return
	}
	weight, err := req.Weight.Decimal("weight")
	if err != nil {
		handleError(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), merchantcommission.UpdateCommissionInput{
		ID:     id,
		Amount: amount,
		Weight: weight,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionResponse(updated))
}
