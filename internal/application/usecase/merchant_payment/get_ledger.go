package merchantpayment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
)

// GetLedgerInput selects a merchant's payments, optionally bounded by inclusive dates.
type GetLedgerInput struct {
	VendorID uuid.UUID
	From     *time.Time
	To       *time.Time
}

// GetLedgerOutput is a merchant's running account.
type GetLedgerOutput struct {
	Payments []*entity.MerchantPayment
	Balance  ledger.Balance
}

// GetLedgerUseCase computes a merchant's receivable balance.
type GetLedgerUseCase struct {
	paymentRepo adapter.MerchantPaymentRepository
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(paymentRepo adapter.MerchantPaymentRepository) *GetLedgerUseCase {
	return &GetLedgerUseCase{paymentRepo: paymentRepo}
}

// Execute returns the payments in chronological order with their balance.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	if input.From != nil && input.To != nil && input.To.Before(*input.From) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDateRange,
			"to must not be before from",
			domainerror.ErrInvalidDateRange,
		)
	}

	payments, err := uc.paymentRepo.FindByFilter(ctx, adapter.PaymentFilter{
		VendorID: input.VendorID,
		From:     input.From,
		To:       input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	ledger.SortPaymentsChronologically(payments)

	balance, err := ledger.ComputeBalance(payments)
	if err != nil {
		return nil, err
	}

	return &GetLedgerOutput{
		Payments: payments,
		Balance:  balance,
	}, nil
}
