package merchantcommission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// UpdateCommissionInput represents the input for correcting a saved commission.
type UpdateCommissionInput struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Weight decimal.Decimal
}

// UpdateCommissionUseCase handles commission corrections.
type UpdateCommissionUseCase struct {
	commissionRepo adapter.MerchantCommissionRepository
}

// NewUpdateCommissionUseCase creates a new UpdateCommissionUseCase instance.
func NewUpdateCommissionUseCase(commissionRepo adapter.MerchantCommissionRepository) *UpdateCommissionUseCase {
	return &UpdateCommissionUseCase{commissionRepo: commissionRepo}
}

// Execute overwrites the amount and weight of a commission.
func (uc *UpdateCommissionUseCase) Execute(ctx context.Context, input UpdateCommissionInput) (*entity.MerchantCommission, error) {
	if err := validateAmounts(input.Amount, input.Weight); err != nil {
		return nil, err
	}

	commission, err := uc.commissionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	commission.Amount = input.Amount.Round(valueobject.Scale)
	commission.Weight = input.Weight.Round(valueobject.Scale)
	commission.UpdatedAt = time.Now().UTC()

	if err := uc.commissionRepo.Update(ctx, commission); err != nil {
		return nil, notFoundOr(err)
	}

	slog.Info("Merchant commission updated", "commissionID", commission.ID)

	return commission, nil
}
