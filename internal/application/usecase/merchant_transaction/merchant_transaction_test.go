package merchanttransaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence"
	"github.com/farmx/ledger-backend/internal/integration/persistence/persistencetest"
)

var now = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

type fixture struct {
	vendors      adapter.VendorRepository
	transactions adapter.TransactionRepository
	resales      adapter.MerchantTransactionRepository
	expenses     adapter.MerchantExpenseRepository
	farmer       *entity.Vendor
	merchant     *entity.Vendor
	rule         valueobject.CommissionRule
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := persistencetest.OpenDB(t)
	f := &fixture{
		vendors:      persistence.NewVendorRepository(db),
		transactions: persistence.NewTransactionRepository(db),
		resales:      persistence.NewMerchantTransactionRepository(db),
		expenses:     persistence.NewMerchantExpenseRepository(db),
		farmer:       entity.NewVendor("Shankar", "", "", "", entity.VendorKindFarmer),
		merchant:     entity.NewVendor("Anil Traders", "", "", "", entity.VendorKindMerchant),
		rule:         valueobject.CommissionRule{RatePerKg: valueobject.DefaultCommissionRatePerKg},
	}
	for _, v := range []*entity.Vendor{f.farmer, f.merchant} {
		if err := f.vendors.Create(context.Background(), v); err != nil {
			t.Fatalf("failed to create vendor: %v", err)
		}
	}
	return f
}

func (f *fixture) create() *CreateMerchantTransactionUseCase {
	return NewCreateMerchantTransactionUseCase(f.resales, f.transactions, f.vendors, valueobject.DefaultDeductionPerBag, fixedClock, time.UTC)
}

func (f *fixture) farmerTransaction(t *testing.T) *entity.FarmerTransaction {
	t.Helper()
	tx, err := entity.NewFarmerTransaction(f.farmer.ID, now, valueobject.QuantityInput{
		Bags:            10,
		Weight:          decimal.NewFromInt(500),
		DeductionPerBag: valueobject.DefaultDeductionPerBag,
		Rate:            decimal.NewFromInt(20),
	}, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.transactions.Create(context.Background(), tx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tx
}

func fields(bags int64, weight, rate string) QuantityFields {
	return QuantityFields{
		Bags:   bags,
		Weight: decimal.RequireFromString(weight),
		Rate:   decimal.RequireFromString(rate),
	}
}

func TestCreateMerchantTransaction_FromFarmerTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	source := f.farmerTransaction(t)

	resale, err := f.create().Execute(ctx, CreateMerchantTransactionInput{
		VendorID:      f.merchant.ID,
		TransactionID: &source.ID,
		Quantities:    fields(10, "500", "22"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resale.FarmerName != "Shankar" {
		t.Errorf("farmer name = %q, want snapshot of source vendor", resale.FarmerName)
	}
	if !resale.Date.Equal(source.Date) {
		t.Errorf("date = %v, want source date %v", resale.Date, source.Date)
	}
	if valueobject.Format(resale.Amount) != "10560.00" {
		t.Errorf("amount = %s, want 10560.00", resale.Amount)
	}

	linked, err := f.transactions.FindByID(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linked.MerchantVendorID == nil || *linked.MerchantVendorID != f.merchant.ID {
		t.Errorf("source transaction not linked to merchant")
	}

	_, err = f.create().Execute(ctx, CreateMerchantTransactionInput{
		VendorID:      f.merchant.ID,
		TransactionID: &source.ID,
		Quantities:    fields(10, "500", "22"),
	})
	if !errors.Is(err, domainerror.ErrAlreadyResold) {
		t.Fatalf("expected ErrAlreadyResold, got %v", err)
	}
}

func TestCreateMerchantTransaction_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	missing := f.merchant.ID

	_, err := f.create().Execute(ctx, CreateMerchantTransactionInput{VendorID: f.farmer.ID, Quantities: fields(1, "50", "10")})
	if !errors.Is(err, domainerror.ErrVendorKindMismatch) {
		t.Errorf("farmer as buyer: expected ErrVendorKindMismatch, got %v", err)
	}

	_, err = f.create().Execute(ctx, CreateMerchantTransactionInput{VendorID: f.merchant.ID, TransactionID: &missing, Quantities: fields(1, "50", "10")})
	var merchantErr *domainerror.MerchantError
	if !errors.As(err, &merchantErr) || merchantErr.Code != domainerror.ErrCodeSourceTransactionNotFound {
		t.Errorf("unknown source: expected %s, got %v", domainerror.ErrCodeSourceTransactionNotFound, err)
	}
}

func TestListMerchantTransactions_Bill(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.create().Execute(ctx, CreateMerchantTransactionInput{
		VendorID:   f.merchant.ID,
		FarmerName: "Walk-in",
		Quantities: fields(10, "600", "20"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expense := entity.NewMerchantExpense(f.merchant.ID, now, "Hamali", decimal.NewFromInt(150))
	if err := f.expenses.Create(ctx, expense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := NewListMerchantTransactionsUseCase(f.resales, f.expenses, f.rule, fixedClock, time.UTC)

	day, err := list.Execute(ctx, ListMerchantTransactionsInput{VendorID: &f.merchant.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.CommissionPersistable {
		t.Error("single day should be persistable")
	}
	if got := valueobject.Format(day.Totals.Commission); got != "480.00" {
		t.Errorf("commission = %s, want 480.00", got)
	}
	if day.Bill == nil {
		t.Fatal("expected a bill for a single merchant and date")
	}
	// amount 580 x 20 = 11600, plus 150 expenses and 480 commission
	if got := valueobject.Format(day.Bill.Total); got != "12230.00" {
		t.Errorf("bill total = %s, want 12230.00", got)
	}

	start := now.AddDate(0, 0, -3)
	week, err := list.Execute(ctx, ListMerchantTransactionsInput{VendorID: &f.merchant.ID, StartDate: &start, EndDate: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if week.CommissionPersistable || week.Bill != nil {
		t.Errorf("multi-day window: persistable=%v bill=%v", week.CommissionPersistable, week.Bill)
	}
	if len(week.Transactions) != 1 {
		t.Errorf("expected 1 transaction, got %d", len(week.Transactions))
	}
}

func TestUpdateAndDeleteMerchantTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	source := f.farmerTransaction(t)

	resale, err := f.create().Execute(ctx, CreateMerchantTransactionInput{
		VendorID:      f.merchant.ID,
		TransactionID: &source.ID,
		Quantities:    fields(10, "500", "22"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update := NewUpdateMerchantTransactionUseCase(f.resales, f.vendors, valueobject.DefaultDeductionPerBag)
	updated, err := update.Execute(ctx, UpdateMerchantTransactionInput{
		ID:         resale.ID,
		VendorID:   f.merchant.ID,
		Quantities: fields(10, "500", "25"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valueobject.Format(updated.Amount) != "12000.00" || updated.FarmerName != "Shankar" {
		t.Errorf("unexpected update result: amount %s farmer %q", updated.Amount, updated.FarmerName)
	}

	byTransaction, err := NewGetByTransactionUseCase(f.resales).Execute(ctx, source.ID)
	if err != nil || byTransaction.ID != resale.ID {
		t.Fatalf("lookup by source failed: %v", err)
	}

	if err := NewDeleteMerchantTransactionUseCase(f.resales).Execute(ctx, resale.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unlinked, _ := f.transactions.FindByID(ctx, source.ID)
	if unlinked.IsResold() {
		t.Error("source transaction still linked after resale delete")
	}
	if _, err := NewGetMerchantTransactionUseCase(f.resales).Execute(ctx, resale.ID); !errors.Is(err, domainerror.ErrMerchantTransactionNotFound) {
		t.Errorf("expected ErrMerchantTransactionNotFound, got %v", err)
	}
}
