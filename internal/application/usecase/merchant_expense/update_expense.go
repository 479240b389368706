package merchantexpense

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.MerchantExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.MerchantExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute changes the description and amount of an expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.MerchantExpense, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateExpense(description, input.Amount); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	expense.Description = description
	expense.Amount = input.Amount.Round(valueobject.Scale)
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, notFoundOr(err)
	}

	slog.Info("Merchant expense updated", "expenseID", expense.ID)

	return expense, nil
}
