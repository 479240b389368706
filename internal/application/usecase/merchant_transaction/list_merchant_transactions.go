package merchanttransaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// ListMerchantTransactionsInput represents the input for listing resales.
type ListMerchantTransactionsInput struct {
	VendorID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListMerchantTransactionsOutput represents the output of listing resales.
// Bill is set only for a single merchant on a single date.
type ListMerchantTransactionsOutput struct {
	Transactions          []*entity.MerchantTransaction
	Totals                ledger.MerchantTotals
	Window                valueobject.DateWindow
	CommissionPersistable bool
	Bill                  *ledger.MerchantBill
}

// ListMerchantTransactionsUseCase handles listing resales with their totals.
type ListMerchantTransactionsUseCase struct {
	merchantTxRepo adapter.MerchantTransactionRepository
	expenseRepo    adapter.MerchantExpenseRepository
	rule           valueobject.CommissionRule
	clock          adapter.Clock
	location       *time.Location
}

// NewListMerchantTransactionsUseCase creates a new ListMerchantTransactionsUseCase instance.
func NewListMerchantTransactionsUseCase(
	merchantTxRepo adapter.MerchantTransactionRepository,
	expenseRepo adapter.MerchantExpenseRepository,
	rule valueobject.CommissionRule,
	clock adapter.Clock,
	location *time.Location,
) *ListMerchantTransactionsUseCase {
	return &ListMerchantTransactionsUseCase{
		merchantTxRepo: merchantTxRepo,
		expenseRepo:    expenseRepo,
		rule:           rule,
		clock:          clock,
		location:       location,
	}
}

// Execute performs the resale listing.
func (uc *ListMerchantTransactionsUseCase) Execute(ctx context.Context, input ListMerchantTransactionsInput) (*ListMerchantTransactionsOutput, error) {
	window, err := valueobject.ResolveWindow(input.StartDate, input.EndDate, uc.clock(), uc.location)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.merchantTxRepo.FindByFilter(ctx, adapter.MerchantTransactionFilter{
		VendorID: input.VendorID,
		Window:   &window,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant transactions: %w", err)
	}

	output := &ListMerchantTransactionsOutput{
		Transactions:          transactions,
		Totals:                ledger.SumMerchantTransactions(transactions, uc.rule),
		Window:                window,
		CommissionPersistable: uc.rule.Persistable(window) == nil,
	}

	if input.VendorID != nil && window.IsSingleDay() {
		expenses, err := uc.expenseRepo.FindByVendorAndDate(ctx, *input.VendorID, window.Start)
		if err != nil {
			return nil, fmt.Errorf("failed to list merchant expenses: %w", err)
		}
		bill := ledger.NewMerchantBill(output.Totals, ledger.SumExpenses(expenses))
		output.Bill = &bill
	}

	return output, nil
}
