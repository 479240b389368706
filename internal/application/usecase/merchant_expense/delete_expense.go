package merchantexpense

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
)

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.MerchantExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.MerchantExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err)
	}

	slog.Info("Merchant expense deleted", "expenseID", id)
	return nil
}
