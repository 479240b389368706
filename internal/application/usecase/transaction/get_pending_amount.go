package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
)

// GetPendingAmountOutput is the amount still owed to a farmer.
type GetPendingAmountOutput struct {
	VendorID      uuid.UUID
	PendingAmount decimal.Decimal
	Count         int
}

// GetPendingAmountUseCase sums the unpaid final amounts of a farmer.
type GetPendingAmountUseCase struct {
	transactionRepo adapter.TransactionRepository
	vendorRepo      adapter.VendorRepository
}

// NewGetPendingAmountUseCase creates a new GetPendingAmountUseCase instance.
func NewGetPendingAmountUseCase(
	transactionRepo adapter.TransactionRepository,
	vendorRepo adapter.VendorRepository,
) *GetPendingAmountUseCase {
	return &GetPendingAmountUseCase{
		transactionRepo: transactionRepo,
		vendorRepo:      vendorRepo,
	}
}

// Execute returns the pending amount across every date.
func (uc *GetPendingAmountUseCase) Execute(ctx context.Context, vendorID uuid.UUID) (*GetPendingAmountOutput, error) {
	if _, err := requireFarmer(ctx, uc.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	pending := entity.PaymentStatusPending
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		VendorID:      &vendorID,
		PaymentStatus: &pending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	return &GetPendingAmountOutput{
		VendorID:      vendorID,
		PendingAmount: ledger.SumPendingAmount(transactions),
		Count:         len(transactions),
	}, nil
}
