package merchanttransaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// GetMerchantTransactionUseCase fetches a single resale.
type GetMerchantTransactionUseCase struct {
	merchantTxRepo adapter.MerchantTransactionRepository
}

// NewGetMerchantTransactionUseCase creates a new GetMerchantTransactionUseCase instance.
func NewGetMerchantTransactionUseCase(merchantTxRepo adapter.MerchantTransactionRepository) *GetMerchantTransactionUseCase {
	return &GetMerchantTransactionUseCase{merchantTxRepo: merchantTxRepo}
}

// Execute returns the resale with the given id.
func (uc *GetMerchantTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.MerchantTransaction, error) {
	transaction, err := uc.merchantTxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return transaction, nil
}

// GetByTransactionUseCase fetches the resale of a farmer transaction.
type GetByTransactionUseCase struct {
	merchantTxRepo adapter.MerchantTransactionRepository
}

// NewGetByTransactionUseCase creates a new GetByTransactionUseCase instance.
func NewGetByTransactionUseCase(merchantTxRepo adapter.MerchantTransactionRepository) *GetByTransactionUseCase {
	return &GetByTransactionUseCase{merchantTxRepo: merchantTxRepo}
}

// Execute returns the resale whose source is transactionID.
func (uc *GetByTransactionUseCase) Execute(ctx context.Context, transactionID uuid.UUID) (*entity.MerchantTransaction, error) {
	transaction, err := uc.merchantTxRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return transaction, nil
}
