package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// UpdatePaymentStatusInput represents the input for marking a farmer transaction paid or pending.
type UpdatePaymentStatusInput struct {
	ID     uuid.UUID
	Status string
}

// UpdatePaymentStatusUseCase handles payment status changes.
type UpdatePaymentStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdatePaymentStatusUseCase creates a new UpdatePaymentStatusUseCase instance.
func NewUpdatePaymentStatusUseCase(transactionRepo adapter.TransactionRepository) *UpdatePaymentStatusUseCase {
	return &UpdatePaymentStatusUseCase{transactionRepo: transactionRepo}
}

// Execute sets the payment status and returns the updated transaction.
func (uc *UpdatePaymentStatusUseCase) Execute(ctx context.Context, input UpdatePaymentStatusInput) (*entity.FarmerTransaction, error) {
	status, err := entity.ParsePaymentStatus(input.Status)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.UpdatePaymentStatus(ctx, input.ID, status); err != nil {
		return nil, notFoundOr(err)
	}

	slog.Info("Payment status updated", "transactionID", input.ID, "status", status)

	return findTransaction(ctx, uc.transactionRepo, input.ID)
}
