package merchantpayment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
)

// DeletePaymentUseCase handles ledger entry deletion.
type DeletePaymentUseCase struct {
	paymentRepo adapter.MerchantPaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.MerchantPaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{paymentRepo: paymentRepo}
}

// Execute performs the deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.paymentRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err)
	}

	slog.Info("Merchant payment deleted", "paymentID", id)
	return nil
}
