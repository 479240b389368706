package merchanttransaction

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

// UpdateMerchantTransactionInput represents the input for resale update.
// The source farmer transaction cannot be changed.
type UpdateMerchantTransactionInput struct {
	ID         uuid.UUID
	VendorID   uuid.UUID
	FarmerName string
	Date       *time.Time
	Quantities QuantityFields
	Remarks    string
}

// UpdateMerchantTransactionUseCase handles resale update logic.
type UpdateMerchantTransactionUseCase struct {
	merchantTxRepo   adapter.MerchantTransactionRepository
	vendorRepo       adapter.VendorRepository
	defaultDeduction decimal.Decimal
}

// NewUpdateMerchantTransactionUseCase creates a new UpdateMerchantTransactionUseCase instance.
func NewUpdateMerchantTransactionUseCase(
	merchantTxRepo adapter.MerchantTransactionRepository,
	vendorRepo adapter.VendorRepository,
	defaultDeduction decimal.Decimal,
) *UpdateMerchantTransactionUseCase {
	return &UpdateMerchantTransactionUseCase{
		merchantTxRepo:   merchantTxRepo,
		vendorRepo:       vendorRepo,
		defaultDeduction: defaultDeduction,
	}
}

// Execute overwrites a resale and recomputes its derived fields.
func (uc *UpdateMerchantTransactionUseCase) Execute(ctx context.Context, input UpdateMerchantTransactionInput) (*entity.MerchantTransaction, error) {
	transaction, err := uc.merchantTxRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	merchant, err := requireMerchant(ctx, uc.vendorRepo, input.VendorID)
	if err != nil {
		return nil, err
	}

	if err := transaction.ApplyQuantities(input.Quantities.resolve(uc.defaultDeduction)); err != nil {
		return nil, err
	}
	transaction.VendorID = merchant.ID
	if name := strings.TrimSpace(input.FarmerName); name != "" {
		transaction.FarmerName = name
	}
	if input.Date != nil {
		transaction.Date = valueobject.CalendarDate(*input.Date)
	}
	transaction.Remarks = strings.TrimSpace(input.Remarks)
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.merchantTxRepo.Update(ctx, transaction); err != nil {
		return nil, notFoundOr(err)
	}
	transaction.VendorName = merchant.Name

	slog.Info("Merchant transaction updated", "merchantTransactionID", transaction.ID)

	return transaction, nil
}
