// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/farmx/ledger-backend/internal/integration/entrypoint/controller"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                        *gin.Engine
	healthController              *controller.HealthController
	vendorController              *controller.VendorController
	transactionController         *controller.TransactionController
	merchantTransactionController *controller.MerchantTransactionController
	merchantExpenseController     *controller.MerchantExpenseController
	merchantCommissionController  *controller.MerchantCommissionController
	merchantPaymentController     *controller.MerchantPaymentController
	dashboardController           *controller.DashboardController
	reportController              *controller.ReportController
	rateLimiter                   *middleware.RateLimiter
}

// Controllers groups the HTTP controllers the router mounts.
type Controllers struct {
	Health              *controller.HealthController
	Vendor              *controller.VendorController
	Transaction         *controller.TransactionController
	MerchantTransaction *controller.MerchantTransactionController
	MerchantExpense     *controller.MerchantExpenseController
	MerchantCommission  *controller.MerchantCommissionController
	MerchantPayment     *controller.MerchantPaymentController
	Dashboard           *controller.DashboardController
	Report              *controller.ReportController
}

// NewRouter creates a new router instance with all dependencies.
// A nil rateLimiter disables rate limiting.
func NewRouter(controllers Controllers, rateLimiter *middleware.RateLimiter) *Router {
	return &Router{
		healthController:              controllers.Health,
		vendorController:              controllers.Vendor,
		transactionController:         controllers.Transaction,
		merchantTransactionController: controllers.MerchantTransaction,
		merchantExpenseController:     controllers.MerchantExpense,
		merchantCommissionController:  controllers.MerchantCommission,
		merchantPaymentController:     controllers.MerchantPayment,
		dashboardController:           controllers.Dashboard,
		reportController:              controllers.Report,
		rateLimiter:                   rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		v1.GET("/health", r.healthController.Check)

		if r.vendorController != nil {
			vendors := v1.Group("/vendors")
			{
				vendors.GET("", r.vendorController.List)
				vendors.POST("", r.vendorController.Create)
				vendors.GET("/type/:type", r.vendorController.ListByType)
				vendors.GET("/:id", r.vendorController.Get)
				vendors.PUT("/:id", r.vendorController.Update)
				vendors.DELETE("/:id", r.vendorController.Delete)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/pending-amount/:vendorId", r.transactionController.PendingAmount)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.PATCH("/:id/payment-status", r.transactionController.UpdatePaymentStatus)
			}
		}

		if r.merchantTransactionController != nil {
			resales := v1.Group("/merchant-transactions")
			{
				resales.GET("", r.merchantTransactionController.List)
				resales.POST("", r.merchantTransactionController.Create)
				resales.GET("/by-transaction/:transactionId", r.merchantTransactionController.GetByTransaction)
				resales.GET("/:id", r.merchantTransactionController.Get)
				resales.PUT("/:id", r.merchantTransactionController.Update)
				resales.DELETE("/:id", r.merchantTransactionController.Delete)
			}
		}

		if r.merchantExpenseController != nil {
			expenses := v1.Group("/merchant-expenses")
			{
				expenses.GET("", r.merchantExpenseController.List)
				expenses.POST("", r.merchantExpenseController.Create)
				expenses.PUT("/:id", r.merchantExpenseController.Update)
				expenses.DELETE("/:id", r.merchantExpenseController.Delete)
			}
		}

		if r.merchantCommissionController != nil {
			commissions := v1.Group("/merchant-commissions")
			{
				commissions.POST("", r.merchantCommissionController.Upsert)
				commissions.POST("/compute", r.merchantCommissionController.Compute)
				commissions.GET("/merchant/:merchantId/date/:date", r.merchantCommissionController.Get)
				commissions.PUT("/:id", r.merchantCommissionController.Update)
			}
		}

		if r.merchantPaymentController != nil {
			payments := v1.Group("/merchant-payments")
			{
				payments.POST("", r.merchantPaymentController.Create)
				payments.GET("/merchant/:merchantId", r.merchantPaymentController.Ledger)
				payments.PUT("/:id", r.merchantPaymentController.Update)
				payments.DELETE("/:id", r.merchantPaymentController.Delete)
			}
		}

		if r.dashboardController != nil {
			v1.GET("/dashboard/today-stats", r.dashboardController.GetTodayStats)
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/farmer-transactions.xlsx", r.reportController.FarmerTransactions)
				reports.GET("/merchant-transactions.xlsx", r.reportController.MerchantTransactions)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
