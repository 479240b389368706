// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

const cacheKeyPrefix = "dashboard:today-stats:"

// TodayStats are the headline figures of the business day.
type TodayStats struct {
	TotalBags      int64           `json:"total_bags"`
	FarmerAmount   decimal.Decimal `json:"farmer_amount"`
	MerchantAmount decimal.Decimal `json:"merchant_amount"`
}

// GetTodayStatsOutput represents the dashboard for one business date.
type GetTodayStatsOutput struct {
	Date                 time.Time                     `json:"date"`
	FarmerTransactions   []*entity.FarmerTransaction   `json:"farmer_transactions"`
	FarmerTotals         ledger.FarmerTotals           `json:"farmer_totals"`
	MerchantTransactions []*entity.MerchantTransaction `json:"merchant_transactions"`
	MerchantTotals       ledger.MerchantTotals         `json:"merchant_totals"`
	Stats                TodayStats                    `json:"stats"`
	YearlyCommission     ledger.CommissionStats        `json:"yearly_commission"`
}

// GetTodayStatsUseCase builds the dashboard, serving it from cache when fresh.
type GetTodayStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	merchantTxRepo  adapter.MerchantTransactionRepository
	commissionRepo  adapter.MerchantCommissionRepository
	cache           adapter.DashboardCache // nil disables caching
	cacheTTL        time.Duration
	rule            valueobject.CommissionRule
	clock           adapter.Clock
	location        *time.Location
}

// NewGetTodayStatsUseCase creates a new GetTodayStatsUseCase instance.
func NewGetTodayStatsUseCase(
	transactionRepo adapter.TransactionRepository,
	merchantTxRepo adapter.MerchantTransactionRepository,
	commissionRepo adapter.MerchantCommissionRepository,
	cache adapter.DashboardCache,
	cacheTTL time.Duration,
	rule valueobject.CommissionRule,
	clock adapter.Clock,
	location *time.Location,
) *GetTodayStatsUseCase {
	return &GetTodayStatsUseCase{
		transactionRepo: transactionRepo,
		merchantTxRepo:  merchantTxRepo,
		commissionRepo:  commissionRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		rule:            rule,
		clock:           clock,
		location:        location,
	}
}

// Execute returns today's dashboard.
func (uc *GetTodayStatsUseCase) Execute(ctx context.Context) (*GetTodayStatsOutput, error) {
	today := valueobject.TodayWindow(uc.clock(), uc.location)
	key := cacheKeyPrefix + today.Start.Format(valueobject.DateLayout)

	if uc.cache != nil {
		var cached GetTodayStatsOutput
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("Dashboard cache read failed", "key", key, "error", err)
		} else if hit {
			slog.Debug("Dashboard served from cache", "key", key)
			return &cached, nil
		}
	}

	output, err := uc.build(ctx, today)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to build dashboard",
			fmt.Errorf("%w: %w", domainerror.ErrDashboardUnavailable, err),
		)
	}

	if uc.cache != nil && uc.cacheTTL > 0 {
		if err := uc.cache.Set(ctx, key, output, uc.cacheTTL); err != nil {
			slog.Warn("Dashboard cache write failed", "key", key, "error", err)
		}
	}

	return output, nil
}

func (uc *GetTodayStatsUseCase) build(ctx context.Context, today valueobject.DateWindow) (*GetTodayStatsOutput, error) {
	farmerKind := entity.VendorKindFarmer
	farmerTransactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		VendorKind: &farmerKind,
		Window:     &today,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list farmer transactions: %w", err)
	}

	merchantTransactions, err := uc.merchantTxRepo.FindByFilter(ctx, adapter.MerchantTransactionFilter{
		Window: &today,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant transactions: %w", err)
	}

	year := today.Start.Year()
	yearWindow, err := valueobject.NewDateWindow(
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		return nil, err
	}
	commissions, err := uc.commissionRepo.FindByWindow(ctx, yearWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	farmerTotals := ledger.SumFarmerTransactions(farmerTransactions)
	merchantTotals := ledger.SumMerchantTransactions(merchantTransactions, uc.rule)

	return &GetTodayStatsOutput{
		Date:                 today.Start,
		FarmerTransactions:   farmerTransactions,
		FarmerTotals:         farmerTotals,
		MerchantTransactions: merchantTransactions,
		MerchantTotals:       merchantTotals,
		Stats: TodayStats{
			TotalBags:      farmerTotals.Bags,
			FarmerAmount:   farmerTotals.Amount,
			MerchantAmount: merchantTotals.Amount,
		},
		YearlyCommission: ledger.GroupCommissionsByMerchant(commissions),
	}, nil
}
