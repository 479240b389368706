package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// DefaultCommissionRatePerKg is the commission charged per kilogram of resold weight.
var DefaultCommissionRatePerKg = decimal.RequireFromString("0.8")

// CommissionRule computes the commission earned on merchant resale weight.
type CommissionRule struct {
	RatePerKg decimal.Decimal
}

// NewCommissionRule creates a CommissionRule, rejecting a negative rate.
func NewCommissionRule(ratePerKg decimal.Decimal) (CommissionRule, error) {
	if ratePerKg.IsNegative() {
		return CommissionRule{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidQuantity,
			"commission rate must not be negative",
			domainerror.ErrInvalidQuantity,
		)
	}
	return CommissionRule{RatePerKg: ratePerKg}, nil
}

// Compute returns round2(totalWeight x rate).
func (r CommissionRule) Compute(totalWeight decimal.Decimal) decimal.Decimal {
	return totalWeight.Mul(r.RatePerKg).Round(Scale)
}

// Persistable reports whether a commission computed over window may be stored.
// Only single-date windows have a (vendor, date) key to upsert against.
func (r CommissionRule) Persistable(window DateWindow) error {
	if !window.IsSingleDay() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeAmbiguousCommissionWindow,
			"commission can only be saved for a single date",
			domainerror.ErrAmbiguousCommissionWindow,
		)
	}
	return nil
}
