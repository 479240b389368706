package merchantcommission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// ComputeCommissionInput represents the input for computing a merchant's commission.
type ComputeCommissionInput struct {
	VendorID  uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Persist   bool
}

// ComputeCommissionOutput carries the computed commission. Warning is set
// when the window spans several dates and the result was therefore not saved.
type ComputeCommissionOutput struct {
	VendorID    uuid.UUID
	Window      valueobject.DateWindow
	TotalWeight decimal.Decimal
	Commission  decimal.Decimal
	Persisted   bool
	Created     bool
	Record      *entity.MerchantCommission
	Warning     error
}

// ComputeCommissionUseCase computes commission from a merchant's resales.
type ComputeCommissionUseCase struct {
	merchantTxRepo adapter.MerchantTransactionRepository
	commissionRepo adapter.MerchantCommissionRepository
	vendorRepo     adapter.VendorRepository
	rule           valueobject.CommissionRule
	clock          adapter.Clock
	location       *time.Location
}

// NewComputeCommissionUseCase creates a new ComputeCommissionUseCase instance.
func NewComputeCommissionUseCase(
	merchantTxRepo adapter.MerchantTransactionRepository,
	commissionRepo adapter.MerchantCommissionRepository,
	vendorRepo adapter.VendorRepository,
	rule valueobject.CommissionRule,
	clock adapter.Clock,
	location *time.Location,
) *ComputeCommissionUseCase {
	return &ComputeCommissionUseCase{
		merchantTxRepo: merchantTxRepo,
		commissionRepo: commissionRepo,
		vendorRepo:     vendorRepo,
		rule:           rule,
		clock:          clock,
		location:       location,
	}
}

// Execute computes the commission over the window. Persisting is only possible
// for a single date; asking to persist a wider window fails.
func (uc *ComputeCommissionUseCase) Execute(ctx context.Context, input ComputeCommissionInput) (*ComputeCommissionOutput, error) {
	window, err := valueobject.ResolveWindow(input.StartDate, input.EndDate, uc.clock(), uc.location)
	if err != nil {
		return nil, err
	}

	merchant, err := requireMerchant(ctx, uc.vendorRepo, input.VendorID)
	if err != nil {
		return nil, err
	}

	persistErr := uc.rule.Persistable(window)
	if input.Persist && persistErr != nil {
		return nil, persistErr
	}

	transactions, err := uc.merchantTxRepo.FindByFilter(ctx, adapter.MerchantTransactionFilter{
		VendorID: &merchant.ID,
		Window:   &window,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant transactions: %w", err)
	}
	totals := ledger.SumMerchantTransactions(transactions, uc.rule)

	output := &ComputeCommissionOutput{
		VendorID:    merchant.ID,
		Window:      window,
		TotalWeight: totals.Weight,
		Commission:  totals.Commission,
		Warning:     persistErr,
	}

	if !input.Persist {
		if persistErr != nil {
			slog.Debug("Commission computed over several dates, not persisting",
				"vendorID", merchant.ID, "start", window.Start, "end", window.End)
		}
		return output, nil
	}

	record := entity.NewMerchantCommission(merchant.ID, window.Start, totals.Commission, totals.Weight)
	created, err := uc.commissionRepo.Upsert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save commission: %w", err)
	}
	record.VendorName = merchant.Name

	output.Persisted = true
	output.Created = created
	output.Record = record

	slog.Info("Merchant commission computed and saved",
		"vendorID", merchant.ID,
		"date", record.Date,
		"commission", record.Amount.String(),
	)

	return output, nil
}
