package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// PaymentStatus tracks whether a farmer has been paid for a transaction.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ParsePaymentStatus converts a raw label into a PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch status := PaymentStatus(raw); status {
	case PaymentStatusPending, PaymentStatusPaid:
		return status, nil
	}
	return "", domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidPaymentStatus,
		"invalid payment status "+raw,
		domainerror.ErrInvalidPaymentStatus,
	)
}

// FarmerTransaction records produce bought from a farmer.
type FarmerTransaction struct {
	ID               uuid.UUID
	Date             time.Time
	VendorID         uuid.UUID
	Bags             int64
	Weight           decimal.Decimal
	DeductionPerBag  decimal.Decimal
	Deduction        decimal.Decimal
	NetWeight        decimal.Decimal
	Rate             decimal.Decimal
	Amount           decimal.Decimal
	Expenses         decimal.Decimal
	FinalAmount      decimal.Decimal
	PaymentStatus    PaymentStatus
	Remarks          string
	MerchantVendorID *uuid.UUID // resale target, if any
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Read-side names, filled by the repository.
	VendorName   string
	MerchantName string
}

// NewFarmerTransaction creates a pending FarmerTransaction with derived fields computed.
func NewFarmerTransaction(
	vendorID uuid.UUID,
	date time.Time,
	quantities valueobject.QuantityInput,
	remarks string,
	merchantVendorID *uuid.UUID,
) (*FarmerTransaction, error) {
	now := time.Now().UTC()

	t := &FarmerTransaction{
		ID:               uuid.New(),
		Date:             valueobject.CalendarDate(date),
		VendorID:         vendorID,
		PaymentStatus:    PaymentStatusPending,
		Remarks:          remarks,
		MerchantVendorID: merchantVendorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := t.ApplyQuantities(quantities); err != nil {
		return nil, err
	}
	return t, nil
}

// Quantities returns the raw inputs the derived fields are computed from.
func (t *FarmerTransaction) Quantities() valueobject.QuantityInput {
	return valueobject.QuantityInput{
		Bags:            t.Bags,
		Weight:          t.Weight,
		DeductionPerBag: t.DeductionPerBag,
		Rate:            t.Rate,
		Expenses:        t.Expenses,
	}
}

// ApplyQuantities overwrites the inputs and recomputes every derived field.
func (t *FarmerTransaction) ApplyQuantities(in valueobject.QuantityInput) error {
	in = in.Normalize()
	derived, err := valueobject.Derive(in)
	if err != nil {
		return err
	}

	t.Bags = in.Bags
	t.Weight = in.Weight
	t.DeductionPerBag = in.DeductionPerBag
	t.Rate = in.Rate
	t.Expenses = in.Expenses
	t.Deduction = derived.Deduction
	t.NetWeight = derived.NetWeight
	t.Amount = derived.Amount
	t.FinalAmount = derived.FinalAmount
	return nil
}

// IsResold reports whether the transaction is linked to a merchant.
func (t *FarmerTransaction) IsResold() bool {
	return t.MerchantVendorID != nil
}
