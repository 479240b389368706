package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

func TestGroupCommissionsByMerchant(t *testing.T) {
	alpha := uuid.New()
	beta := uuid.New()
	gamma := uuid.New()
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	commission := func(vendor uuid.UUID, name, amount, weight string, offset int) *entity.MerchantCommission {
		c := entity.NewMerchantCommission(vendor, day.AddDate(0, 0, offset), dec(amount), dec(weight))
		c.VendorName = name
		return c
	}

	rows := []*entity.MerchantCommission{
		commission(alpha, "Alpha Traders", "100.00", "125", 0),
		commission(beta, "Beta Mandi", "400.00", "500", 0),
		commission(alpha, "Alpha Traders", "350.00", "437.5", 1),
		commission(gamma, "Gamma Co", "40.00", "50", 2),
	}

	stats := GroupCommissionsByMerchant(rows)

	if valueobject.Format(stats.Total) != "890.00" {
		t.Errorf("total = %s, want 890.00", valueobject.Format(stats.Total))
	}
	if len(stats.MerchantWise) != 3 {
		t.Fatalf("expected 3 merchants, got %d", len(stats.MerchantWise))
	}

	wantOrder := []uuid.UUID{alpha, beta, gamma}
	for i, id := range wantOrder {
		if stats.MerchantWise[i].VendorID != id {
			t.Errorf("position %d = %s, want %s", i, stats.MerchantWise[i].VendorName, id)
		}
	}

	first := stats.MerchantWise[0]
	if valueobject.Format(first.TotalCommission) != "450.00" {
		t.Errorf("alpha commission = %s, want 450.00", valueobject.Format(first.TotalCommission))
	}
	if valueobject.Format(first.TotalWeight) != "562.50" {
		t.Errorf("alpha weight = %s, want 562.50", valueobject.Format(first.TotalWeight))
	}
}

func TestGroupCommissionsByMerchant_Empty(t *testing.T) {
	stats := GroupCommissionsByMerchant(nil)
	if !stats.Total.IsZero() || len(stats.MerchantWise) != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
