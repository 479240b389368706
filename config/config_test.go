package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg := Load()

	if cfg.Ledger.CommissionRatePerKg.String() != "0.8" {
		t.Errorf("commission rate = %s, want 0.8", cfg.Ledger.CommissionRatePerKg)
	}
	if cfg.Ledger.DefaultDeductionPerBag.StringFixed(2) != "2.00" {
		t.Errorf("deduction per bag = %s, want 2.00", cfg.Ledger.DefaultDeductionPerBag)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate limiting should be enabled outside tests")
	}
	if cfg.Redis.DashboardCacheTTL != 15*time.Second {
		t.Errorf("cache ttl = %v, want 15s", cfg.Redis.DashboardCacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("COMMISSION_RATE_PER_KG", "1.25")
	t.Setenv("DEFAULT_DEDUCTION_PER_BAG", "-3")
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg := Load()

	if cfg.Ledger.CommissionRatePerKg.String() != "1.25" {
		t.Errorf("commission rate = %s, want 1.25", cfg.Ledger.CommissionRatePerKg)
	}
	if cfg.Ledger.DefaultDeductionPerBag.StringFixed(2) != "2.00" {
		t.Errorf("negative deduction should fall back to default, got %s", cfg.Ledger.DefaultDeductionPerBag)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("invalid port should fall back to 8080, got %d", cfg.Server.Port)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limiting should be disabled in test environment")
	}
}

func TestLedgerConfig_Location(t *testing.T) {
	if loc := (LedgerConfig{Timezone: "Not/AZone"}).Location(); loc != time.UTC {
		t.Errorf("unknown zone should fall back to UTC, got %v", loc)
	}
	if loc := (LedgerConfig{Timezone: "UTC"}).Location(); loc.String() != "UTC" {
		t.Errorf("Location() = %v, want UTC", loc)
	}
}
