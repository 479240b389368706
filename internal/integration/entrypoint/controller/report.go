package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmx/ledger-backend/internal/application/usecase/report"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// ReportController serves spreadsheet exports.
type ReportController struct {
	farmerUseCase   *report.ExportFarmerReportUseCase
	merchantUseCase *report.ExportMerchantReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	farmerUseCase *report.ExportFarmerReportUseCase,
	merchantUseCase *report.ExportMerchantReportUseCase,
) *ReportController {
	return &ReportController{
		farmerUseCase:   farmerUseCase,
		merchantUseCase: merchantUseCase,
	}
}

// FarmerTransactions handles GET /reports/farmer-transactions.xlsx requests.
func (c *ReportController) FarmerTransactions(ctx *gin.Context) {
	input, ok := bindExportInput(ctx)
	if !ok {
		return
	}

	output, err := c.farmerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	sendAttachment(ctx, output)
}

// MerchantTransactions handles GET /reports/merchant-transactions.xlsx requests.
func (c *ReportController) MerchantTransactions(ctx *gin.Context) {
	input, ok := bindExportInput(ctx)
	if !ok {
		return
	}

	output, err := c.merchantUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	sendAttachment(ctx, output)
}

func bindExportInput(ctx *gin.Context) (report.ExportInput, bool) {
	var query dto.ExportReportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindingError(ctx, err, string(domainerror.ErrCodeInvalidDate))
		return report.ExportInput{}, false
	}

	startDate, endDate, err := query.Dates()
	if err != nil {
		handleError(ctx, err)
		return report.ExportInput{}, false
	}
	vendorID, ok := parseOptionalID(ctx, &query.VendorID, "vendor")
	if !ok {
		return report.ExportInput{}, false
	}

	return report.ExportInput{
		VendorID:   vendorID,
		VendorKind: query.VendorType,
		StartDate:  startDate,
		EndDate:    endDate,
	}, true
}

func sendAttachment(ctx *gin.Context, output *report.ExportOutput) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
