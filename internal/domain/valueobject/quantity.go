// Package valueobject contains the pure ledger rules shared by transaction entry and reporting.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// Scale is the number of fraction digits kept for every quantity.
const Scale int32 = 2

// DefaultDeductionPerBag is the sack weight deducted per bag when none is given.
var DefaultDeductionPerBag = decimal.RequireFromString("2.0")

// QuantityInput holds the raw fields a trade is entered with.
type QuantityInput struct {
	Bags            int64
	Weight          decimal.Decimal
	DeductionPerBag decimal.Decimal
	Rate            decimal.Decimal
	Expenses        decimal.Decimal // farmer side only
}

// DerivedQuantities holds the fields computed from a QuantityInput.
type DerivedQuantities struct {
	Deduction   decimal.Decimal
	NetWeight   decimal.Decimal
	Amount      decimal.Decimal
	FinalAmount decimal.Decimal
}

// Validate rejects negative inputs.
func (in QuantityInput) Validate() error {
	checks := []struct {
		field string
		value decimal.Decimal
	}{
		{"bags", decimal.NewFromInt(in.Bags)},
		{"weight", in.Weight},
		{"deduction_per_bag", in.DeductionPerBag},
		{"rate", in.Rate},
		{"expenses", in.Expenses},
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidQuantity,
				c.field+" must not be negative",
				domainerror.ErrInvalidQuantity,
			)
		}
	}
	return nil
}

// Normalize rounds every input to the stored precision.
func (in QuantityInput) Normalize() QuantityInput {
	return QuantityInput{
		Bags:            in.Bags,
		Weight:          in.Weight.Round(Scale),
		DeductionPerBag: in.DeductionPerBag.Round(Scale),
		Rate:            in.Rate.Round(Scale),
		Expenses:        in.Expenses.Round(Scale),
	}
}

// Derive computes deduction, net weight, amount and final amount.
// Net weight and final amount floor at zero.
func Derive(in QuantityInput) (DerivedQuantities, error) {
	if err := in.Validate(); err != nil {
		return DerivedQuantities{}, err
	}

	deduction := decimal.NewFromInt(in.Bags).Mul(in.DeductionPerBag).Round(Scale)
	netWeight := floorZero(in.Weight.Sub(deduction)).Round(Scale)
	amount := netWeight.Mul(in.Rate).Round(Scale)
	finalAmount := floorZero(amount.Sub(in.Expenses)).Round(Scale)

	return DerivedQuantities{
		Deduction:   deduction,
		NetWeight:   netWeight,
		Amount:      amount,
		FinalAmount: finalAmount,
	}, nil
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseQuantity coerces a raw numeric string. Blank input counts as zero.
func ParseQuantity(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidQuantity,
			field+" is not a number",
			domainerror.ErrInvalidQuantity,
		)
	}
	return d, nil
}

// ParseBags coerces a raw bag count, which must be a whole number.
func ParseBags(raw string) (int64, error) {
	d, err := ParseQuantity("bags", raw)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidQuantity,
			"bags must be a whole number",
			domainerror.ErrInvalidQuantity,
		)
	}
	if !d.BigInt().IsInt64() {
		return 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidQuantity,
			"bags is out of range",
			domainerror.ErrInvalidQuantity,
		)
	}
	return d.IntPart(), nil
}

// Format renders a quantity with exactly two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// DeductionOrDefault returns the given deduction per bag, or fallback when none was entered.
func DeductionOrDefault(given *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if given == nil {
		return fallback
	}
	return *given
}
