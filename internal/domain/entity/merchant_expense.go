package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// MerchantExpense is a cost the business incurred on a merchant's behalf for a day.
type MerchantExpense struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMerchantExpense creates a new MerchantExpense entity.
func NewMerchantExpense(vendorID uuid.UUID, date time.Time, description string, amount decimal.Decimal) *MerchantExpense {
	now := time.Now().UTC()

	return &MerchantExpense{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Date:        valueobject.CalendarDate(date),
		Description: description,
		Amount:      amount.Round(valueobject.Scale),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
