package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
)

// DeleteTransactionUseCase handles farmer transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute deletes a farmer transaction and its resale.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err)
	}

	slog.Info("Farmer transaction deleted", "transactionID", id)
	return nil
}
