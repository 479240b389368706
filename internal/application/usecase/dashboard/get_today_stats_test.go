package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence"
	"github.com/farmx/ledger-backend/internal/integration/persistence/persistencetest"
)

var now = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

// memoryCache stores JSON like the Redis cache does.
type memoryCache struct {
	entries map[string][]byte
	sets    int
	fail    bool
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.fail {
		return false, errors.New("cache down")
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if c.fail {
		return errors.New("cache down")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

type fixture struct {
	transactions adapter.TransactionRepository
	resales      adapter.MerchantTransactionRepository
	commissions  adapter.MerchantCommissionRepository
	farmer       *entity.Vendor
	merchant     *entity.Vendor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := persistencetest.OpenDB(t)
	vendors := persistence.NewVendorRepository(db)
	f := &fixture{
		transactions: persistence.NewTransactionRepository(db),
		resales:      persistence.NewMerchantTransactionRepository(db),
		commissions:  persistence.NewMerchantCommissionRepository(db),
		farmer:       entity.NewVendor("Shankar", "", "", "", entity.VendorKindFarmer),
		merchant:     entity.NewVendor("Anil Traders", "", "", "", entity.VendorKindMerchant),
	}
	for _, v := range []*entity.Vendor{f.farmer, f.merchant} {
		if err := vendors.Create(context.Background(), v); err != nil {
			t.Fatalf("failed to create vendor: %v", err)
		}
	}
	return f
}

func (f *fixture) addFarmerTransaction(t *testing.T, date time.Time, withResale bool) {
	t.Helper()
	tx, err := entity.NewFarmerTransaction(f.farmer.ID, date, valueobject.QuantityInput{
		Bags:            10,
		Weight:          decimal.NewFromInt(500),
		DeductionPerBag: valueobject.DefaultDeductionPerBag,
		Rate:            decimal.NewFromInt(20),
		Expenses:        decimal.NewFromInt(100),
	}, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resale *entity.MerchantTransaction
	if withResale {
		tx.MerchantVendorID = &f.merchant.ID
		resale, err = entity.NewMerchantTransaction(f.merchant.ID, &tx.ID, f.farmer.Name, date, tx.Quantities(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := f.transactions.Create(context.Background(), tx, resale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func (f *fixture) useCase(cache adapter.DashboardCache) *GetTodayStatsUseCase {
	rule := valueobject.CommissionRule{RatePerKg: valueobject.DefaultCommissionRatePerKg}
	return NewGetTodayStatsUseCase(f.transactions, f.resales, f.commissions, cache, time.Minute, rule, fixedClock, time.UTC)
}

func TestGetTodayStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addFarmerTransaction(t, now, true)
	f.addFarmerTransaction(t, now.AddDate(0, 0, -1), false)

	for _, c := range []*entity.MerchantCommission{
		entity.NewMerchantCommission(f.merchant.ID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(300), decimal.NewFromInt(375)),
		entity.NewMerchantCommission(f.merchant.ID, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(200), decimal.NewFromInt(250)),
		entity.NewMerchantCommission(f.merchant.ID, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(999), decimal.NewFromInt(999)),
	} {
		if _, err := f.commissions.Upsert(ctx, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	output, err := f.useCase(nil).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.FarmerTransactions) != 1 || len(output.MerchantTransactions) != 1 {
		t.Fatalf("expected today's rows only, got %d farmer and %d merchant",
			len(output.FarmerTransactions), len(output.MerchantTransactions))
	}
	if output.Stats.TotalBags != 10 {
		t.Errorf("total bags = %d, want 10", output.Stats.TotalBags)
	}
	if got := valueobject.Format(output.Stats.FarmerAmount); got != "9600.00" {
		t.Errorf("farmer amount = %s, want 9600.00", got)
	}
	if got := valueobject.Format(output.YearlyCommission.Total); got != "500.00" {
		t.Errorf("yearly commission = %s, want 500.00", got)
	}
	if len(output.YearlyCommission.MerchantWise) != 1 || output.YearlyCommission.MerchantWise[0].VendorName != "Anil Traders" {
		t.Errorf("unexpected merchant-wise commission: %+v", output.YearlyCommission.MerchantWise)
	}
}

func TestGetTodayStats_Cache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addFarmerTransaction(t, now, false)

	cache := &memoryCache{entries: map[string][]byte{}}
	uc := f.useCase(cache)

	first, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the dashboard to be cached once, got %d sets", cache.sets)
	}
	if _, ok := cache.entries["dashboard:today-stats:2024-05-10"]; !ok {
		t.Fatalf("cache key not keyed by business date: %v", cache.entries)
	}

	f.addFarmerTransaction(t, now, false)

	cached, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached.Stats.TotalBags != first.Stats.TotalBags {
		t.Errorf("expected cached snapshot, got %d bags", cached.Stats.TotalBags)
	}

	cache.fail = true
	fresh, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("cache failures must not fail the request: %v", err)
	}
	if fresh.Stats.TotalBags != 20 {
		t.Errorf("expected a fresh computation, got %d bags", fresh.Stats.TotalBags)
	}
}
