package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// GetTransactionUseCase handles fetching a single farmer transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute returns the farmer transaction with the given id.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.FarmerTransaction, error) {
	return findTransaction(ctx, uc.transactionRepo, id)
}
