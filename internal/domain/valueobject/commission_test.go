package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

func TestCommissionRule_Compute(t *testing.T) {
	rule, err := NewCommissionRule(DefaultCommissionRatePerKg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := dec("480").Add(dec("120"))
	if got := Format(rule.Compute(total)); got != "480.00" {
		t.Errorf("commission on 600 kg = %s, want 480.00", got)
	}
	if got := Format(rule.Compute(dec("0"))); got != "0.00" {
		t.Errorf("commission on 0 kg = %s, want 0.00", got)
	}
}

func TestCommissionRule_Linearity(t *testing.T) {
	rule, _ := NewCommissionRule(dec("0.8"))
	tolerance := dec("0.01")

	pairs := [][2]string{
		{"480", "120"},
		{"10.01", "20.02"},
		{"0.07", "0.07"},
		{"1234.56", "789.01"},
	}
	for _, p := range pairs {
		a, b := dec(p[0]), dec(p[1])
		whole := rule.Compute(a.Add(b))
		parts := rule.Compute(a).Add(rule.Compute(b))
		if whole.Sub(parts).Abs().GreaterThan(tolerance) {
			t.Errorf("commission(%s+%s) = %s, parts sum to %s", p[0], p[1], whole, parts)
		}
	}
}

func TestNewCommissionRule_RejectsNegativeRate(t *testing.T) {
	if _, err := NewCommissionRule(dec("-0.8")); !errors.Is(err, domainerror.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCommissionRule_Persistable(t *testing.T) {
	rule, _ := NewCommissionRule(DefaultCommissionRatePerKg)
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	single, _ := NewDateWindow(day, day)
	if err := rule.Persistable(single); err != nil {
		t.Errorf("single day window should be persistable, got %v", err)
	}

	today := TodayWindow(day.Add(15*time.Hour), time.UTC)
	if err := rule.Persistable(today); err != nil {
		t.Errorf("default day window should be persistable, got %v", err)
	}

	multi, _ := NewDateWindow(day, day.AddDate(0, 0, 1))
	err := rule.Persistable(multi)
	if !errors.Is(err, domainerror.ErrAmbiguousCommissionWindow) {
		t.Fatalf("expected ErrAmbiguousCommissionWindow, got %v", err)
	}
}
