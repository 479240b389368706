package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmx/ledger-backend/internal/application/usecase/dashboard"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getTodayStatsUseCase *dashboard.GetTodayStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getTodayStatsUseCase *dashboard.GetTodayStatsUseCase) *DashboardController {
	return &DashboardController{getTodayStatsUseCase: getTodayStatsUseCase}
}

// GetTodayStats handles GET /dashboard/today-stats requests.
func (c *DashboardController) GetTodayStats(ctx *gin.Context) {
	output, err := c.getTodayStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTodayStatsResponse(output))
}
