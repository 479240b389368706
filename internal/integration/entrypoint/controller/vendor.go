// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmx/ledger-backend/internal/application/usecase/vendor"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// VendorController handles vendor endpoints.
type VendorController struct {
	listUseCase   *vendor.ListVendorsUseCase
	createUseCase *vendor.CreateVendorUseCase
	getUseCase    *vendor.GetVendorUseCase
	updateUseCase *vendor.UpdateVendorUseCase
	deleteUseCase *vendor.DeleteVendorUseCase
}

// NewVendorController creates a new vendor controller instance.
func NewVendorController(
	listUseCase *vendor.ListVendorsUseCase,
	createUseCase *vendor.CreateVendorUseCase,
	getUseCase *vendor.GetVendorUseCase,
	updateUseCase *vendor.UpdateVendorUseCase,
	deleteUseCase *vendor.DeleteVendorUseCase,
) *VendorController {
	return &VendorController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /vendors requests, optionally filtered by ?type.
func (c *VendorController) List(ctx *gin.Context) {
	var query dto.ListVendorsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeInvalidVendorKind))
		return
	}
	c.list(ctx, query.Type)
}

// ListByType handles GET /vendors/type/:type requests.
func (c *VendorController) ListByType(ctx *gin.Context) {
	c.list(ctx, ctx.Param("type"))
}

func (c *VendorController) list(ctx *gin.Context, kind string) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), vendor.ListVendorsInput{Kind: kind})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendorListResponse(output.Vendors))
}

// Create handles POST /vendors requests.
func (c *VendorController) Create(ctx *gin.Context) {
	var req dto.CreateVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeVendorNameRequired))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), vendor.CreateVendorInput{
		Name:          req.Name,
		Phone:         req.Phone,
		AccountNumber: req.AccountNumber,
		Address:       req.Address,
		Kind:          req.Type,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVendorResponse(output.Vendor))
}

// Get handles GET /vendors/:id requests.
func (c *VendorController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "vendor")
	if !ok {
		return
	}

	v, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendorResponse(v))
}

// Update handles PUT /vendors/:id requests. The vendor type never changes.
func (c *VendorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "vendor")
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeVendorNameRequired))
		return
	}

	v, err := c.updateUseCase.Execute(ctx.Request.Context(), vendor.UpdateVendorInput{
		ID:            id,
		Name:          req.Name,
		Phone:         req.Phone,
		AccountNumber: req.AccountNumber,
		Address:       req.Address,
		Kind:          req.Type,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendorResponse(v))
}

// Delete handles DELETE /vendors/:id requests.
func (c *VendorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "vendor")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
