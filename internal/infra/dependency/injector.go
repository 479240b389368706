// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/farmx/ledger-backend/config"
	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/application/usecase/dashboard"
	merchantcommission "github.com/farmx/ledger-backend/internal/application/usecase/merchant_commission"
	merchantexpense "github.com/farmx/ledger-backend/internal/application/usecase/merchant_expense"
	merchantpayment "github.com/farmx/ledger-backend/internal/application/usecase/merchant_payment"
	merchanttransaction "github.com/farmx/ledger-backend/internal/application/usecase/merchant_transaction"
	"github.com/farmx/ledger-backend/internal/application/usecase/report"
	"github.com/farmx/ledger-backend/internal/application/usecase/transaction"
	"github.com/farmx/ledger-backend/internal/application/usecase/vendor"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/infra/server/router"
	"github.com/farmx/ledger-backend/internal/integration/cache"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/controller"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/middleware"
	"github.com/farmx/ledger-backend/internal/integration/persistence"
	excelreport "github.com/farmx/ledger-backend/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	clock adapter.Clock
}

// WithClock replaces the wall clock, so callers can pin the business date.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case the dashboard is never cached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) (*Injector, error) {
	o := options{clock: adapter.SystemClock}
	for _, opt := range opts {
		opt(&o)
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	rule, err := valueobject.NewCommissionRule(cfg.Ledger.CommissionRatePerKg)
	if err != nil {
		return nil, fmt.Errorf("invalid commission rate: %w", err)
	}
	location := cfg.Ledger.Location()
	deduction := cfg.Ledger.DefaultDeductionPerBag
	clock := o.clock

	// Create repositories
	vendorRepo := persistence.NewVendorRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	merchantTxRepo := persistence.NewMerchantTransactionRepository(db)
	expenseRepo := persistence.NewMerchantExpenseRepository(db)
	commissionRepo := persistence.NewMerchantCommissionRepository(db)
	paymentRepo := persistence.NewMerchantPaymentRepository(db)

	// Create adapters/services
	var dashboardCache adapter.DashboardCache
	if redisClient != nil {
		dashboardCache = cache.NewRedisDashboardCache(redisClient)
	}
	renderer := excelreport.NewExcelRenderer()

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		cacheHealthChecker(redisClient),
	)

	vendorController := controller.NewVendorController(
		vendor.NewListVendorsUseCase(vendorRepo),
		vendor.NewCreateVendorUseCase(vendorRepo),
		vendor.NewGetVendorUseCase(vendorRepo),
		vendor.NewUpdateVendorUseCase(vendorRepo),
		vendor.NewDeleteVendorUseCase(vendorRepo),
	)

	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo, clock, location),
		transaction.NewCreateTransactionUseCase(transactionRepo, vendorRepo, deduction, clock, location),
		transaction.NewGetTransactionUseCase(transactionRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo, merchantTxRepo, vendorRepo, deduction),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		transaction.NewUpdatePaymentStatusUseCase(transactionRepo),
		transaction.NewGetPendingAmountUseCase(transactionRepo, vendorRepo),
	)

	merchantTransactionController := controller.NewMerchantTransactionController(
		merchanttransaction.NewListMerchantTransactionsUseCase(merchantTxRepo, expenseRepo, rule, clock, location),
		merchanttransaction.NewCreateMerchantTransactionUseCase(merchantTxRepo, transactionRepo, vendorRepo, deduction, clock, location),
		merchanttransaction.NewGetMerchantTransactionUseCase(merchantTxRepo),
		merchanttransaction.NewGetByTransactionUseCase(merchantTxRepo),
		merchanttransaction.NewUpdateMerchantTransactionUseCase(merchantTxRepo, vendorRepo, deduction),
		merchanttransaction.NewDeleteMerchantTransactionUseCase(merchantTxRepo),
	)

	merchantExpenseController := controller.NewMerchantExpenseController(
		merchantexpense.NewListExpensesUseCase(expenseRepo),
		merchantexpense.NewCreateExpenseUseCase(expenseRepo, vendorRepo),
		merchantexpense.NewUpdateExpenseUseCase(expenseRepo),
		merchantexpense.NewDeleteExpenseUseCase(expenseRepo),
	)

	merchantCommissionController := controller.NewMerchantCommissionController(
		merchantcommission.NewUpsertCommissionUseCase(commissionRepo, vendorRepo),
		merchantcommission.NewComputeCommissionUseCase(merchantTxRepo, commissionRepo, vendorRepo, rule, clock, location),
		merchantcommission.NewGetCommissionUseCase(commissionRepo),
		merchantcommission.NewUpdateCommissionUseCase(commissionRepo),
	)

	merchantPaymentController := controller.NewMerchantPaymentController(
		merchantpayment.NewCreatePaymentUseCase(paymentRepo, vendorRepo),
		merchantpayment.NewUpdatePaymentUseCase(paymentRepo),
		merchantpayment.NewDeletePaymentUseCase(paymentRepo),
		merchantpayment.NewGetLedgerUseCase(paymentRepo),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetTodayStatsUseCase(
			transactionRepo,
			merchantTxRepo,
			commissionRepo,
			dashboardCache,
			cfg.Redis.DashboardCacheTTL,
			rule,
			clock,
			location,
		),
	)

	reportController := controller.NewReportController(
		report.NewExportFarmerReportUseCase(transactionRepo, renderer, clock, location),
		report.NewExportMerchantReportUseCase(merchantTxRepo, renderer, rule, clock, location),
	)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter, err = middleware.NewRateLimiter(cfg.RateLimit.Rate)
		if err != nil {
			return nil, err
		}
	}

	// Create router
	r := router.NewRouter(router.Controllers{
		Health:              healthController,
		Vendor:              vendorController,
		Transaction:         transactionController,
		MerchantTransaction: merchantTransactionController,
		MerchantExpense:     merchantExpenseController,
		MerchantCommission:  merchantCommissionController,
		MerchantPayment:     merchantPaymentController,
		Dashboard:           dashboardController,
		Report:              reportController,
	}, rateLimiter)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}, nil
}

func cacheHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
