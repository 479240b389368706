package merchantcommission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// GetCommissionInput identifies a commission by merchant and date.
type GetCommissionInput struct {
	VendorID uuid.UUID
	Date     time.Time
}

// GetCommissionUseCase fetches the commission saved for a merchant on a date.
type GetCommissionUseCase struct {
	commissionRepo adapter.MerchantCommissionRepository
}

// NewGetCommissionUseCase creates a new GetCommissionUseCase instance.
func NewGetCommissionUseCase(commissionRepo adapter.MerchantCommissionRepository) *GetCommissionUseCase {
	return &GetCommissionUseCase{commissionRepo: commissionRepo}
}

// Execute performs the lookup.
func (uc *GetCommissionUseCase) Execute(ctx context.Context, input GetCommissionInput) (*entity.MerchantCommission, error) {
	commission, err := uc.commissionRepo.FindByVendorAndDate(ctx, input.VendorID, input.Date)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return commission, nil
}
