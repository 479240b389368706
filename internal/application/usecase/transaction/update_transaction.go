package transaction

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

// UpdateTransactionInput represents the input for farmer transaction update.
// Every field is overwritten. A nil MerchantVendorID removes the resale.
type UpdateTransactionInput struct {
	ID               uuid.UUID
	VendorID         uuid.UUID
	Date             *time.Time // keeps the stored date when nil
	Quantities       QuantityFields
	Remarks          string
	MerchantVendorID *uuid.UUID
}

// UpdateTransactionUseCase handles farmer transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	resaleRepo       adapter.MerchantTransactionRepository
	vendorRepo       adapter.VendorRepository
	defaultDeduction decimal.Decimal
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	resaleRepo adapter.MerchantTransactionRepository,
	vendorRepo adapter.VendorRepository,
	defaultDeduction decimal.Decimal,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo:  transactionRepo,
		resaleRepo:       resaleRepo,
		vendorRepo:       vendorRepo,
		defaultDeduction: defaultDeduction,
	}
}

// Execute overwrites a farmer transaction, recomputes its derived fields and
// keeps the resale in step with the merchant link.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*entity.FarmerTransaction, error) {
	transaction, err := findTransaction(ctx, uc.transactionRepo, input.ID)
	if err != nil {
		return nil, err
	}

	farmer, err := requireFarmer(ctx, uc.vendorRepo, input.VendorID)
	if err != nil {
		return nil, err
	}

	var merchant *entity.Vendor
	if input.MerchantVendorID != nil {
		if merchant, err = requireMerchant(ctx, uc.vendorRepo, *input.MerchantVendorID); err != nil {
			return nil, err
		}
	}

	if err := transaction.ApplyQuantities(input.Quantities.resolve(uc.defaultDeduction)); err != nil {
		return nil, err
	}
	transaction.VendorID = farmer.ID
	if input.Date != nil {
		transaction.Date = transactionDate(input.Date, time.Time{}, nil)
	}
	transaction.Remarks = strings.TrimSpace(input.Remarks)
	transaction.MerchantVendorID = input.MerchantVendorID
	transaction.UpdatedAt = time.Now().UTC()

	var resale *entity.MerchantTransaction
	if transaction.IsResold() {
		_, err := uc.resaleRepo.FindByTransactionID(ctx, transaction.ID)
		switch {
		case errors.Is(err, domainerror.ErrMerchantTransactionNotFound):
			if resale, err = newResale(transaction, farmer); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, fmt.Errorf("failed to find resale: %w", err)
		}
	}

	if err := uc.transactionRepo.Update(ctx, transaction, resale); err != nil {
		return nil, notFoundOr(err)
	}

	transaction.VendorName = farmer.Name
	transaction.MerchantName = ""
	if merchant != nil {
		transaction.MerchantName = merchant.Name
	}

	slog.Info("Farmer transaction updated",
		"transactionID", transaction.ID,
		"resold", transaction.IsResold(),
	)

	return transaction, nil
}
