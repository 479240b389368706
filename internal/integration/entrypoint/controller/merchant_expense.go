package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	merchantexpense "github.com/farmx/ledger-backend/internal/application/usecase/merchant_expense"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// MerchantExpenseController handles merchant expense endpoints.
type MerchantExpenseController struct {
	listUseCase   *merchantexpense.ListExpensesUseCase
	createUseCase *merchantexpense.CreateExpenseUseCase
	updateUseCase *merchantexpense.UpdateExpenseUseCase
	deleteUseCase *merchantexpense.DeleteExpenseUseCase
}

// NewMerchantExpenseController creates a new merchant expense controller instance.
func NewMerchantExpenseController(
	listUseCase *merchantexpense.ListExpensesUseCase,
	createUseCase *merchantexpense.CreateExpenseUseCase,
	updateUseCase *merchantexpense.UpdateExpenseUseCase,
	deleteUseCase *merchantexpense.DeleteExpenseUseCase,
) *MerchantExpenseController {
	return &MerchantExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /merchant-expenses?merchant_id=&date= requests.
func (c *MerchantExpenseController) List(ctx *gin.Context) {
	var query dto.ListExpensesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeMerchantInvalidInput))
		return
	}

	vendorID, ok := parseID(ctx, query.MerchantID, "merchant")
	if !ok {
		return
	}
	date, err := valueobject.ParseDate(query.Date)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), merchantexpense.ListExpensesInput{
		VendorID: vendorID,
		Date:     date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /merchant-expenses requests.
func (c *MerchantExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeInvalidExpense))
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

	created, err := c.createUseCase.Execute(ctx.Request.Context(), merchantexpense.CreateExpenseInput{
		VendorID:    vendorID,
		Date:        date,
		Description: req.Description,
		Amount:      amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

// Update handles PUT /merchant-expenses/:id requests.
func (c *MerchantExpenseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "expense")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeInvalidExpense))
		return
	}

	amount, err := req.Amount.Decimal("amount")
	if err != nil {
		handleError(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), merchantexpense.UpdateExpenseInput{
		ID:          id,
		Description: req.Description,
		Amount:      amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(updated))
}

// Delete handles DELETE /merchant-expenses/:id requests.
func (c *MerchantExpenseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "expense")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
