package merchanttransaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
)

// DeleteMerchantTransactionUseCase handles resale deletion.
type DeleteMerchantTransactionUseCase struct {
	merchantTxRepo adapter.MerchantTransactionRepository
}

// NewDeleteMerchantTransactionUseCase creates a new DeleteMerchantTransactionUseCase instance.
func NewDeleteMerchantTransactionUseCase(merchantTxRepo adapter.MerchantTransactionRepository) *DeleteMerchantTransactionUseCase {
	return &DeleteMerchantTransactionUseCase{merchantTxRepo: merchantTxRepo}
}

// Execute deletes a resale. The source farmer transaction loses its merchant link.
func (uc *DeleteMerchantTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.merchantTxRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err)
	}

	slog.Info("Merchant transaction deleted", "merchantTransactionID", id)
	return nil
}
