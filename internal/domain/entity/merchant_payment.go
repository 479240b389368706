package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// PaymentType classifies a merchant ledger line.
type PaymentType string

const (
	// PaymentTypeReceivable is an amount the merchant owes the business.
	PaymentTypeReceivable PaymentType = "receivable"
	// PaymentTypeReceived is an amount the merchant paid the business.
	PaymentTypeReceived PaymentType = "received"
)

// Ledger labels used in the Marathi account books.
const (
	paymentLabelReceivable = "नावे"
	paymentLabelReceived   = "जमा"
)

// ParsePaymentType converts a label into a PaymentType.
// Both the English names and the account book labels are accepted.
func ParsePaymentType(label string) (PaymentType, error) {
	switch strings.TrimSpace(label) {
	case string(PaymentTypeReceivable), paymentLabelReceivable:
		return PaymentTypeReceivable, nil
	case string(PaymentTypeReceived), paymentLabelReceived:
		return PaymentTypeReceived, nil
	}
	return "", domainerror.NewLedgerError(
		domainerror.ErrCodeUnknownPaymentType,
		"unknown payment type "+label,
		domainerror.ErrUnknownPaymentType,
	)
}

// MerchantPayment is one line of a merchant's running account.
type MerchantPayment struct {
	ID        uuid.UUID
	VendorID  uuid.UUID
	Date      time.Time
	Type      PaymentType
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMerchantPayment creates a new MerchantPayment entity.
func NewMerchantPayment(vendorID uuid.UUID, date time.Time, paymentType PaymentType, amount decimal.Decimal) *MerchantPayment {
	now := time.Now().UTC()

	return &MerchantPayment{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Date:      valueobject.CalendarDate(date),
		Type:      paymentType,
		Amount:    amount.Round(valueobject.Scale),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
