// Package merchantexpense contains merchant expense use cases.
package merchantexpense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	VendorID    uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.MerchantExpenseRepository
	vendorRepo  adapter.VendorRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.MerchantExpenseRepository, vendorRepo adapter.VendorRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		vendorRepo:  vendorRepo,
	}
}

// Execute records an expense against a merchant for one date.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.MerchantExpense, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateExpense(description, input.Amount); err != nil {
		return nil, err
	}

	vendor, err := uc.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, domainerror.ErrVendorNotFound) {
			return nil, domainerror.NewMerchantError(
				domainerror.ErrCodeMerchantVendorNotFound,
				"merchant not found",
				domainerror.ErrVendorNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	if !vendor.IsMerchant() {
		return nil, domainerror.NewMerchantError(
			domainerror.ErrCodeMerchantVendorMismatch,
			"vendor is not a merchant",
			domainerror.ErrVendorKindMismatch,
		)
	}

	expense := entity.NewMerchantExpense(vendor.ID, input.Date, description, input.Amount)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("Merchant expense created", "expenseID", expense.ID, "vendorID", expense.VendorID)

	return expense, nil
}

func validateExpense(description string, amount decimal.Decimal) error {
	if description == "" || !amount.IsPositive() {
		return domainerror.NewMerchantError(
			domainerror.ErrCodeInvalidExpense,
			"description is required and amount must be greater than zero",
			domainerror.ErrInvalidExpense,
		)
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, domainerror.ErrExpenseNotFound) {
		return domainerror.NewMerchantError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return fmt.Errorf("failed to find expense: %w", err)
}
