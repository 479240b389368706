// Package merchantcommission contains merchant commission use cases.
package merchantcommission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// UpsertCommissionInput represents the input for saving a merchant's commission for a date.
type UpsertCommissionInput struct {
	VendorID uuid.UUID
	Date     time.Time
	Amount   decimal.Decimal
	Weight   decimal.Decimal
}

// UpsertCommissionOutput represents the output of a commission upsert.
type UpsertCommissionOutput struct {
	Commission *entity.MerchantCommission
	Created    bool
}

// UpsertCommissionUseCase stores at most one commission per merchant and date.
type UpsertCommissionUseCase struct {
	commissionRepo adapter.MerchantCommissionRepository
	vendorRepo     adapter.VendorRepository
}

// NewUpsertCommissionUseCase creates a new UpsertCommissionUseCase instance.
func NewUpsertCommissionUseCase(
	commissionRepo adapter.MerchantCommissionRepository,
	vendorRepo adapter.VendorRepository,
) *UpsertCommissionUseCase {
	return &UpsertCommissionUseCase{
		commissionRepo: commissionRepo,
		vendorRepo:     vendorRepo,
	}
}

// Execute performs the upsert.
func (uc *UpsertCommissionUseCase) Execute(ctx context.Context, input UpsertCommissionInput) (*UpsertCommissionOutput, error) {
	if err := validateAmounts(input.Amount, input.Weight); err != nil {
		return nil, err
	}

	merchant, err := requireMerchant(ctx, uc.vendorRepo, input.VendorID)
	if err != nil {
		return nil, err
	}

	commission := entity.NewMerchantCommission(merchant.ID, input.Date, input.Amount, input.Weight)
	created, err := uc.commissionRepo.Upsert(ctx, commission)
	if err != nil {
		return nil, fmt.Errorf("failed to save commission: %w", err)
	}
	commission.VendorName = merchant.Name

	slog.Info("Merchant commission saved",
		"commissionID", commission.ID,
		"vendorID", commission.VendorID,
		"date", commission.Date,
		"created", created,
	)

	return &UpsertCommissionOutput{Commission: commission, Created: created}, nil
}

func validateAmounts(amount, weight decimal.Decimal) error {
	if amount.IsNegative() || weight.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidQuantity,
			"commission amount and weight must not be negative",
			domainerror.ErrInvalidQuantity,
		)
	}
	return nil
}

func requireMerchant(ctx context.Context, vendorRepo adapter.VendorRepository, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := vendorRepo.FindByID(ctx, id)
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
	return vendor, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, domainerror.ErrCommissionNotFound) {
		return domainerror.NewMerchantError(
			domainerror.ErrCodeCommissionNotFound,
			"commission not found",
			domainerror.ErrCommissionNotFound,
		)
	}
	return fmt.Errorf("failed to find commission: %w", err)
}
