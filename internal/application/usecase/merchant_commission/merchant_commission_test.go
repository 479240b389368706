package merchantcommission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence"
	"github.com/farmx/ledger-backend/internal/integration/persistence/persistencetest"
)

var now = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func TestComputeCommission(t *testing.T) {
	db := persistencetest.OpenDB(t)
	vendors := persistence.NewVendorRepository(db)
	resales := persistence.NewMerchantTransactionRepository(db)
	commissions := persistence.NewMerchantCommissionRepository(db)
	ctx := context.Background()
	rule := valueobject.CommissionRule{RatePerKg: valueobject.DefaultCommissionRatePerKg}

	merchant := entity.NewVendor("Kisan Mart", "", "", "", entity.VendorKindMerchant)
	if err := vendors.Create(ctx, merchant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, date := range []time.Time{now, now.AddDate(0, 0, -1)} {
		resale, err := entity.NewMerchantTransaction(merchant.ID, nil, "Walk-in", date, valueobject.QuantityInput{
			Bags:            10,
			Weight:          decimal.NewFromInt(600),
			DeductionPerBag: valueobject.DefaultDeductionPerBag,
			Rate:            decimal.NewFromInt(20),
		}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := resales.Create(ctx, resale); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	compute := NewComputeCommissionUseCase(resales, commissions, vendors, rule, fixedClock, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	t.Run("single day persists", func(t *testing.T) {
		output, err := compute.Execute(ctx, ComputeCommissionInput{VendorID: merchant.ID, Persist: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Persisted || !output.Created || output.Record == nil {
			t.Fatalf("expected a persisted record, got %+v", output)
		}
		if valueobject.Format(output.Commission) != "480.00" {
			t.Errorf("commission = %s, want 480.00", output.Commission)
		}

		again, err := compute.Execute(ctx, ComputeCommissionInput{VendorID: merchant.ID, Persist: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Created || again.Record.ID != output.Record.ID {
			t.Errorf("second compute should update the same row")
		}
	})

	t.Run("multi day warns", func(t *testing.T) {
		output, err := compute.Execute(ctx, ComputeCommissionInput{VendorID: merchant.ID, StartDate: &yesterday, EndDate: &now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Persisted {
			t.Error("multi-day commission must not be persisted")
		}
		if !errors.Is(output.Warning, domainerror.ErrAmbiguousCommissionWindow) {
			t.Errorf("expected ambiguous window warning, got %v", output.Warning)
		}
		if valueobject.Format(output.Commission) != "960.00" {
			t.Errorf("commission = %s, want 960.00", output.Commission)
		}
	})

	t.Run("multi day persist is rejected", func(t *testing.T) {
		_, err := compute.Execute(ctx, ComputeCommissionInput{VendorID: merchant.ID, StartDate: &yesterday, EndDate: &now, Persist: true})
		if !errors.Is(err, domainerror.ErrAmbiguousCommissionWindow) {
			t.Errorf("expected ErrAmbiguousCommissionWindow, got %v", err)
		}
	})

	t.Run("start only is not persistable", func(t *testing.T) {
		output, err := compute.Execute(ctx, ComputeCommissionInput{VendorID: merchant.ID, StartDate: &now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(output.Warning, domainerror.ErrAmbiguousCommissionWindow) {
			t.Errorf("expected ambiguous window warning, got %v", output.Warning)
		}

		_, err = compute.Execute(ctx, ComputeCommissionInput{VendorID: merchant.ID, StartDate: &now, Persist: true})
		if !errors.Is(err, domainerror.ErrAmbiguousCommissionWindow) {
			t.Errorf("expected ErrAmbiguousCommissionWindow, got %v", err)
		}
	})

	t.Run("get and update", func(t *testing.T) {
		stored, err := NewGetCommissionUseCase(commissions).Execute(ctx, GetCommissionInput{VendorID: merchant.ID, Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updated, err := NewUpdateCommissionUseCase(commissions).Execute(ctx, UpdateCommissionInput{
			ID:     stored.ID,
			Amount: decimal.NewFromInt(500),
			Weight: stored.Weight,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valueobject.Format(updated.Amount) != "500.00" {
			t.Errorf("amount = %s, want 500.00", updated.Amount)
		}

		if _, err := NewGetCommissionUseCase(commissions).Execute(ctx, GetCommissionInput{VendorID: merchant.ID, Date: yesterday}); !errors.Is(err, domainerror.ErrCommissionNotFound) {
			t.Errorf("expected ErrCommissionNotFound, got %v", err)
		}
	})
}

func TestUpsertCommission(t *testing.T) {
	db := persistencetest.OpenDB(t)
	vendors := persistence.NewVendorRepository(db)
	commissions := persistence.NewMerchantCommissionRepository(db)
	ctx := context.Background()

	merchant := entity.NewVendor("Sai Agro", "", "", "", entity.VendorKindMerchant)
	if err := vendors.Create(ctx, merchant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upsert := NewUpsertCommissionUseCase(commissions, vendors)

	first, err := upsert.Execute(ctx, UpsertCommissionInput{VendorID: merchant.ID, Date: now, Amount: decimal.NewFromInt(100), Weight: decimal.NewFromInt(125)})
	if err != nil || !first.Created {
		t.Fatalf("first upsert: %+v, %v", first, err)
	}
	second, err := upsert.Execute(ctx, UpsertCommissionInput{VendorID: merchant.ID, Date: now, Amount: decimal.NewFromInt(120), Weight: decimal.NewFromInt(150)})
	if err != nil || second.Created {
		t.Fatalf("second upsert: %+v, %v", second, err)
	}
	if second.Commission.ID != first.Commission.ID {
		t.Error("upsert created a second row for the same merchant and date")
	}

	if _, err := upsert.Execute(ctx, UpsertCommissionInput{VendorID: merchant.ID, Date: now, Amount: decimal.NewFromInt(-1)}); !errors.Is(err, domainerror.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}
