package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing farmer transactions.
// Without dates the window is today in the business time zone.
type ListTransactionsInput struct {
	VendorID   *uuid.UUID
	VendorKind string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListTransactionsOutput represents the output of listing farmer transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.FarmerTransaction
	Totals       ledger.FarmerTotals
	Window       valueobject.DateWindow
}

// ListTransactionsUseCase handles listing farmer transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	location        *time.Location
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	location *time.Location,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
		location:        location,
	}
}

// Execute lists the transactions in the resolved window together with their totals.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	window, err := valueobject.ResolveWindow(input.StartDate, input.EndDate, uc.clock(), uc.location)
	if err != nil {
		return nil, err
	}

	filter := adapter.TransactionFilter{
		VendorID: input.VendorID,
		Window:   &window,
	}
	if input.VendorKind != "" {
		kind, err := entity.ParseVendorKind(input.VendorKind)
		if err != nil {
			return nil, err
		}
		filter.VendorKind = &kind
	}

	slog.Debug("Listing farmer transactions",
		"start", window.Start,
		"end", window.End,
		"vendorID", input.VendorID,
	)

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Totals:       ledger.SumFarmerTransactions(transactions),
		Window:       window,
	}, nil
}
