package merchantpayment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// UpdatePaymentInput represents the input for correcting a ledger entry.
type UpdatePaymentInput struct {
	ID     uuid.UUID
	Date   time.Time
	Type   string
	Amount decimal.Decimal
}

// UpdatePaymentUseCase handles ledger entry updates.
type UpdatePaymentUseCase struct {
	paymentRepo adapter.MerchantPaymentRepository
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(paymentRepo adapter.MerchantPaymentRepository) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{paymentRepo: paymentRepo}
}

// Execute overwrites the date, type and amount of a payment.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*entity.MerchantPayment, error) {
	paymentType, err := parsePayment(input.Type, input.Amount)
	if err != nil {
		return nil, err
	}

	payment, err := uc.paymentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	payment.Date = valueobject.CalendarDate(input.Date)
	payment.Type = paymentType
	payment.Amount = input.Amount.Round(valueobject.Scale)
	payment.UpdatedAt = time.Now().UTC()

	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, notFoundOr(err)
	}

	slog.Info("Merchant payment updated", "paymentID", payment.ID)

	return payment, nil
}
