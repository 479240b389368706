package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for farmer transaction creation.
type CreateTransactionInput struct {
	VendorID         uuid.UUID
	Date             *time.Time // defaults to today
	Quantities       QuantityFields
	Remarks          string
	MerchantVendorID *uuid.UUID
}

// CreateTransactionUseCase handles farmer transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	vendorRepo       adapter.VendorRepository
	defaultDeduction decimal.Decimal
	clock            adapter.Clock
	location         *time.Location
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	vendorRepo adapter.VendorRepository,
	defaultDeduction decimal.Decimal,
	clock adapter.Clock,
	location *time.Location,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:  transactionRepo,
		vendorRepo:       vendorRepo,
		defaultDeduction: defaultDeduction,
		clock:            clock,
		location:         location,
	}
}

// Execute records a purchase from a farmer. When a merchant is named, the
// resale to that merchant is recorded in the same database transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.FarmerTransaction, error) {
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

	transaction, err := entity.NewFarmerTransaction(
		farmer.ID,
		transactionDate(input.Date, uc.clock(), uc.location),
		input.Quantities.resolve(uc.defaultDeduction),
		strings.TrimSpace(input.Remarks),
		input.MerchantVendorID,
	)
	if err != nil {
		return nil, err
	}

	var resale *entity.MerchantTransaction
	if transaction.IsResold() {
		if resale, err = newResale(transaction, farmer); err != nil {
			return nil, err
		}
	}

	if err := uc.transactionRepo.Create(ctx, transaction, resale); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	transaction.VendorName = farmer.Name
	if merchant != nil {
		transaction.MerchantName = merchant.Name
	}

	slog.Info("Farmer transaction created",
		"transactionID", transaction.ID,
		"vendorID", transaction.VendorID,
		"resold", transaction.IsResold(),
	)

	return transaction, nil
}
