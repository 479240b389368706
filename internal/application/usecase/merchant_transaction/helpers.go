// Package merchanttransaction contains merchant resale use cases.
package merchanttransaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// QuantityFields are the quantities a resale is entered with.
// A nil DeductionPerBag takes the configured default.
type QuantityFields struct {
	Bags            int64
	Weight          decimal.Decimal
	DeductionPerBag *decimal.Decimal
	Rate            decimal.Decimal
}

func (f QuantityFields) resolve(defaultDeduction decimal.Decimal) valueobject.QuantityInput {
	return valueobject.QuantityInput{
		Bags:            f.Bags,
		Weight:          f.Weight,
		DeductionPerBag: valueobject.DeductionOrDefault(f.DeductionPerBag, defaultDeduction),
		Rate:            f.Rate,
	}
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
	if errors.Is(err, domainerror.ErrMerchantTransactionNotFound) {
		return domainerror.NewMerchantError(
			domainerror.ErrCodeMerchantTransactionNotFound,
			"merchant transaction not found",
			domainerror.ErrMerchantTransactionNotFound,
		)
	}
	return fmt.Errorf("failed to find merchant transaction: %w", err)
}
