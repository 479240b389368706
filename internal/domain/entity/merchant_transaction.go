package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// MerchantTransaction records produce resold to a merchant.
// It carries no expenses and no final amount.
type MerchantTransaction struct {
	ID              uuid.UUID
	TransactionID   *uuid.UUID // originating farmer transaction
	VendorID        uuid.UUID
	FarmerName      string // snapshot taken at resale time
	Bags            int64
	Weight          decimal.Decimal
	DeductionPerBag decimal.Decimal
	Deduction       decimal.Decimal
	NetWeight       decimal.Decimal
	Rate            decimal.Decimal
	Amount          decimal.Decimal
	Date            time.Time
	Remarks         string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	VendorName string
}

// NewMerchantTransaction creates a MerchantTransaction with derived fields computed.
func NewMerchantTransaction(
	vendorID uuid.UUID,
	transactionID *uuid.UUID,
	farmerName string,
	date time.Time,
	quantities valueobject.QuantityInput,
	remarks string,
) (*MerchantTransaction, error) {
	now := time.Now().UTC()

	t := &MerchantTransaction{
		ID:            uuid.New(),
		TransactionID: transactionID,
		VendorID:      vendorID,
		FarmerName:    farmerName,
		Date:          valueobject.CalendarDate(date),
		Remarks:       remarks,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := t.ApplyQuantities(quantities); err != nil {
		return nil, err
	}
	return t, nil
}

// Quantities returns the raw inputs the derived fields are computed from.
func (t *MerchantTransaction) Quantities() valueobject.QuantityInput {
	return valueobject.QuantityInput{
		Bags:            t.Bags,
		Weight:          t.Weight,
		DeductionPerBag: t.DeductionPerBag,
		Rate:            t.Rate,
	}
}

// ApplyQuantities overwrites the inputs and recomputes the derived fields.
// Expenses in the input are ignored.
func (t *MerchantTransaction) ApplyQuantities(in valueobject.QuantityInput) error {
	in = in.Normalize()
	in.Expenses = decimal.Zero
	derived, err := valueobject.Derive(in)
	if err != nil {
		return err
	}

	t.Bags = in.Bags
	t.Weight = in.Weight
	t.DeductionPerBag = in.DeductionPerBag
	t.Rate = in.Rate
	t.Deduction = derived.Deduction
	t.NetWeight = derived.NetWeight
	t.Amount = derived.Amount
	return nil
}
