// Package transaction contains farmer transaction use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// QuantityFields are the quantities a farmer transaction is entered with.
// A nil DeductionPerBag takes the configured default.
type QuantityFields struct {
	Bags            int64
	Weight          decimal.Decimal
	DeductionPerBag *decimal.Decimal
	Rate            decimal.Decimal
	Expenses        decimal.Decimal
}

func (f QuantityFields) resolve(defaultDeduction decimal.Decimal) valueobject.QuantityInput {
	return valueobject.QuantityInput{
		Bags:            f.Bags,
		Weight:          f.Weight,
		DeductionPerBag: valueobject.DeductionOrDefault(f.DeductionPerBag, defaultDeduction),
		Rate:            f.Rate,
		Expenses:        f.Expenses,
	}
}

// transactionDate returns the entered date, or today in loc.
func transactionDate(date *time.Time, now time.Time, loc *time.Location) time.Time {
	if date != nil {
		return valueobject.CalendarDate(*date)
	}
	return valueobject.TodayWindow(now, loc).Start
}

func requireFarmer(ctx context.Context, vendorRepo adapter.VendorRepository, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrVendorNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionVendorNotFound,
				"farmer not found",
				domainerror.ErrVendorNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	if !vendor.IsFarmer() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionVendorMismatch,
			"vendor is not a farmer",
			domainerror.ErrVendorKindMismatch,
		)
	}
	return vendor, nil
}

func requireMerchant(ctx context.Context, vendorRepo adapter.VendorRepository, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrVendorNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionVendorNotFound,
				"merchant not found",
				domainerror.ErrVendorNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	if !vendor.IsMerchant() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionVendorMismatch,
			"merchant_vendor_id does not reference a merchant",
			domainerror.ErrVendorKindMismatch,
		)
	}
	return vendor, nil
}

func findTransaction(ctx context.Context, repo adapter.TransactionRepository, id uuid.UUID) (*entity.FarmerTransaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return transaction, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return fmt.Errorf("failed to find transaction: %w", err)
}

// newResale builds the merchant transaction that mirrors a farmer transaction.
func newResale(t *entity.FarmerTransaction, farmer *entity.Vendor) (*entity.MerchantTransaction, error) {
	return entity.NewMerchantTransaction(
		*t.MerchantVendorID,
		&t.ID,
		farmer.Name,
		t.Date,
		t.Quantities(),
		t.Remarks,
	)
}
