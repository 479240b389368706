package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// Balance is the state of a merchant's running account.
type Balance struct {
	TotalReceivable decimal.Decimal
	TotalReceived   decimal.Decimal
	Balance         decimal.Decimal
}

// ComputeBalance classifies each payment by type and returns receivable minus received.
// Payments come from storage, so a payment with an unrecognized type is a data
// fault and fails the whole computation.
func ComputeBalance(payments []*entity.MerchantPayment) (Balance, error) {
	receivable := decimal.Zero
	received := decimal.Zero

	for _, p := range payments {
		switch p.Type {
		case entity.PaymentTypeReceivable:
			receivable = receivable.Add(p.Amount)
		case entity.PaymentTypeReceived:
			received = received.Add(p.Amount)
		default:
			return Balance{}, domainerror.NewLedgerError(
				domainerror.ErrCodeStoredPaymentTypeInvalid,
				fmt.Sprintf("payment %s has unknown type %q", p.ID, p.Type),
				domainerror.ErrUnknownPaymentType,
			)
		}
	}

	return Balance{
		TotalReceivable: receivable.Round(valueobject.Scale),
		TotalReceived:   received.Round(valueobject.Scale),
		Balance:         receivable.Sub(received).Round(valueobject.Scale),
	}, nil
}

// SortPaymentsChronologically orders payments by date, then by creation time.
func SortPaymentsChronologically(payments []*entity.MerchantPayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].Date.Equal(payments[j].Date) {
			return payments[i].Date.Before(payments[j].Date)
		}
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
}
