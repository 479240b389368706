package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// MerchantCommission is the commission earned from one merchant on one date.
// (VendorID, Date) is unique.
type MerchantCommission struct {
	ID        uuid.UUID
	VendorID  uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	Weight    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	VendorName string
}

// NewMerchantCommission creates a new MerchantCommission entity.
func NewMerchantCommission(vendorID uuid.UUID, date time.Time, amount, weight decimal.Decimal) *MerchantCommission {
	now := time.Now().UTC()

	return &MerchantCommission{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Date:      valueobject.CalendarDate(date),
		Amount:    amount.Round(valueobject.Scale),
		Weight:    weight.Round(valueobject.Scale),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
