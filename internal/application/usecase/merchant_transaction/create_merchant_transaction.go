package merchanttransaction

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
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// CreateMerchantTransactionInput represents the input for recording a resale.
type CreateMerchantTransactionInput struct {
	VendorID      uuid.UUID
	TransactionID *uuid.UUID // source farmer transaction, optional
	FarmerName    string     // defaults to the source farmer's name
	Date          *time.Time // defaults to the source date, then today
	Quantities    QuantityFields
	Remarks       string
}

// CreateMerchantTransactionUseCase handles resale creation logic.
type CreateMerchantTransactionUseCase struct {
	merchantTxRepo   adapter.MerchantTransactionRepository
	transactionRepo  adapter.TransactionRepository
	vendorRepo       adapter.VendorRepository
	defaultDeduction decimal.Decimal
	clock            adapter.Clock
	location         *time.Location
}

// NewCreateMerchantTransactionUseCase creates a new CreateMerchantTransactionUseCase instance.
func NewCreateMerchantTransactionUseCase(
	merchantTxRepo adapter.MerchantTransactionRepository,
	transactionRepo adapter.TransactionRepository,
	vendorRepo adapter.VendorRepository,
	defaultDeduction decimal.Decimal,
	clock adapter.Clock,
	location *time.Location,
) *CreateMerchantTransactionUseCase {
	return &CreateMerchantTransactionUseCase{
		merchantTxRepo:   merchantTxRepo,
		transactionRepo:  transactionRepo,
		vendorRepo:       vendorRepo,
		defaultDeduction: defaultDeduction,
		clock:            clock,
		location:         location,
	}
}

// Execute records a resale. A source farmer transaction may be resold only once.
func (uc *CreateMerchantTransactionUseCase) Execute(ctx context.Context, input CreateMerchantTransactionInput) (*entity.MerchantTransaction, error) {
	merchant, err := requireMerchant(ctx, uc.vendorRepo, input.VendorID)
	if err != nil {
		return nil, err
	}

	farmerName := strings.TrimSpace(input.FarmerName)
	date := valueobject.TodayWindow(uc.clock(), uc.location).Start

	if input.TransactionID != nil {
		source, err := uc.findUnsoldSource(ctx, *input.TransactionID)
		if err != nil {
			return nil, err
		}
		if farmerName == "" {
			farmerName = source.VendorName
		}
		date = source.Date
	}
	if input.Date != nil {
		date = *input.Date
	}

	transaction, err := entity.NewMerchantTransaction(
		merchant.ID,
		input.TransactionID,
		farmerName,
		date,
		input.Quantities.resolve(uc.defaultDeduction),
		strings.TrimSpace(input.Remarks),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.merchantTxRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create merchant transaction: %w", err)
	}
	transaction.VendorName = merchant.Name

	slog.Info("Merchant transaction created",
		"merchantTransactionID", transaction.ID,
		"vendorID", transaction.VendorID,
		"sourceTransactionID", transaction.TransactionID,
	)

	return transaction, nil
}

func (uc *CreateMerchantTransactionUseCase) findUnsoldSource(ctx context.Context, id uuid.UUID) (*entity.FarmerTransaction, error) {
	source, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewMerchantError(
				domainerror.ErrCodeSourceTransactionNotFound,
				"source farmer transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find source transaction: %w", err)
	}

	resold := source.IsResold()
	if !resold {
		_, err := uc.merchantTxRepo.FindByTransactionID(ctx, id)
		switch {
		case err == nil:
			resold = true
		case !errors.Is(err, domainerror.ErrMerchantTransactionNotFound):
			return nil, fmt.Errorf("failed to find resale: %w", err)
		}
	}
	if resold {
		return nil, domainerror.NewMerchantError(
			domainerror.ErrCodeAlreadyResold,
			"farmer transaction is already resold",
			domainerror.ErrAlreadyResold,
		)
	}

	return source, nil
}
