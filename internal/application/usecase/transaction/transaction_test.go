package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

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
	db           *gorm.DB
	vendors      adapter.VendorRepository
	transactions adapter.TransactionRepository
	resales      adapter.MerchantTransactionRepository
	farmer       *entity.Vendor
	merchant     *entity.Vendor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := persistencetest.OpenDB(t)
	f := &fixture{
		db:           db,
		vendors:      persistence.NewVendorRepository(db),
		transactions: persistence.NewTransactionRepository(db),
		resales:      persistence.NewMerchantTransactionRepository(db),
		farmer:       entity.NewVendor("Shankar", "", "", "", entity.VendorKindFarmer),
		merchant:     entity.NewVendor("Anil Traders", "", "", "", entity.VendorKindMerchant),
	}
	for _, v := range []*entity.Vendor{f.farmer, f.merchant} {
		if err := f.vendors.Create(context.Background(), v); err != nil {
			t.Fatalf("failed to create vendor: %v", err)
		}
	}
	return f
}

func (f *fixture) create() *CreateTransactionUseCase {
	return NewCreateTransactionUseCase(f.transactions, f.vendors, valueobject.DefaultDeductionPerBag, fixedClock, time.UTC)
}

func fields(bags int64, weight, rate, expenses string) QuantityFields {
	return QuantityFields{
		Bags:     bags,
		Weight:   decimal.RequireFromString(weight),
		Rate:     decimal.RequireFromString(rate),
		Expenses: decimal.RequireFromString(expenses),
	}
}

func TestCreateTransaction_DerivesAndRecordsResale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create().Execute(ctx, CreateTransactionInput{
		VendorID:         f.farmer.ID,
		Quantities:       fields(10, "500", "20", "100"),
		MerchantVendorID: &f.merchant.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := valueobject.Format(created.Deduction); got != "20.00" {
		t.Errorf("deduction = %s, want 20.00 (default deduction per bag)", got)
	}
	if got := valueobject.Format(created.FinalAmount); got != "9500.00" {
		t.Errorf("final amount = %s, want 9500.00", got)
	}
	if !created.Date.Equal(valueobject.CalendarDate(now)) {
		t.Errorf("date = %v, want today", created.Date)
	}
	if created.MerchantName != "Anil Traders" {
		t.Errorf("merchant name = %q", created.MerchantName)
	}

	resale, err := f.resales.FindByTransactionID(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected resale, got %v", err)
	}
	if resale.VendorID != f.merchant.ID || resale.FarmerName != "Shankar" {
		t.Errorf("unexpected resale: vendor %s farmer %q", resale.VendorID, resale.FarmerName)
	}
	if valueobject.Format(resale.Amount) != "9600.00" {
		t.Errorf("resale amount = %s, want 9600.00", resale.Amount)
	}
}

func TestCreateTransaction_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantErr  error
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name:     "merchant as seller",
			input:    CreateTransactionInput{VendorID: f.merchant.ID, Quantities: fields(1, "50", "10", "0")},
			wantErr:  domainerror.ErrVendorKindMismatch,
			wantCode: domainerror.ErrCodeTransactionVendorMismatch,
		},
		{
			name: "farmer as resale target",
			input: CreateTransactionInput{
				VendorID:         f.farmer.ID,
				Quantities:       fields(1, "50", "10", "0"),
				MerchantVendorID: &f.farmer.ID,
			},
			wantErr:  domainerror.ErrVendorKindMismatch,
			wantCode: domainerror.ErrCodeTransactionVendorMismatch,
		},
		{
			name: "negative deduction",
			input: CreateTransactionInput{
				VendorID: f.farmer.ID,
				Quantities: QuantityFields{
					Bags:            1,
					Weight:          decimal.NewFromInt(50),
					DeductionPerBag: &negative,
					Rate:            decimal.NewFromInt(10),
				},
			},
			wantErr: domainerror.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create().Execute(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantCode == "" {
				return
			}
			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) || txErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestListTransactions_Window(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	yesterday := now.AddDate(0, 0, -1)

	for _, date := range []*time.Time{nil, &yesterday} {
		if _, err := f.create().Execute(ctx, CreateTransactionInput{
			VendorID:   f.farmer.ID,
			Date:       date,
			Quantities: fields(10, "500", "20", "0"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list := NewListTransactionsUseCase(f.transactions, fixedClock, time.UTC)

	today, err := list.Execute(ctx, ListTransactionsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(today.Transactions) != 1 {
		t.Fatalf("default window: expected 1 transaction, got %d", len(today.Transactions))
	}
	if valueobject.Format(today.Totals.Amount) != "9600.00" {
		t.Errorf("totals amount = %s, want 9600.00", today.Totals.Amount)
	}

	both, err := list.Execute(ctx, ListTransactionsInput{StartDate: &yesterday, EndDate: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(both.Transactions) != 2 || both.Totals.Bags != 20 {
		t.Errorf("explicit window: %d rows, %d bags", len(both.Transactions), both.Totals.Bags)
	}

	if _, err := list.Execute(ctx, ListTransactionsInput{StartDate: &now, EndDate: &yesterday}); !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestListTransactions_HalfOpenWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	yesterday := now.AddDate(0, 0, -1)
	nextWeek := now.AddDate(0, 0, 7)

	for _, date := range []*time.Time{&yesterday, nil, &nextWeek} {
		if _, err := f.create().Execute(ctx, CreateTransactionInput{
			VendorID:   f.farmer.ID,
			Date:       date,
			Quantities: fields(10, "500", "20", "0"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list := NewListTransactionsUseCase(f.transactions, fixedClock, time.UTC)

	fromToday, err := list.Execute(ctx, ListTransactionsInput{StartDate: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fromToday.Transactions) != 2 {
		t.Errorf("start only: expected 2 transactions, got %d", len(fromToday.Transactions))
	}
	if fromToday.Window.HasEnd() {
		t.Errorf("start only window must have no end, got %+v", fromToday.Window)
	}

	untilToday, err := list.Execute(ctx, ListTransactionsInput{EndDate: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(untilToday.Transactions) != 2 {
		t.Errorf("end only: expected 2 transactions, got %d", len(untilToday.Transactions))
	}
	for _, tx := range untilToday.Transactions {
		if tx.Date.After(valueobject.CalendarDate(now)) {
			t.Errorf("end only window returned %s", tx.Date.Format(valueobject.DateLayout))
		}
	}
}

func TestUpdateTransaction_ResaleFollowsLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create().Execute(ctx, CreateTransactionInput{
		VendorID:   f.farmer.ID,
		Quantities: fields(10, "500", "20", "0"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update := NewUpdateTransactionUseCase(f.transactions, f.resales, f.vendors, valueobject.DefaultDeductionPerBag)

	linked, err := update.Execute(ctx, UpdateTransactionInput{
		ID:               created.ID,
		VendorID:         f.farmer.ID,
		Quantities:       fields(12, "600", "20", "50"),
		MerchantVendorID: &f.merchant.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valueobject.Format(linked.NetWeight) != "576.00" {
		t.Errorf("net weight not recomputed: %s", linked.NetWeight)
	}
	if _, err := f.resales.FindByTransactionID(ctx, created.ID); err != nil {
		t.Fatalf("expected resale after linking, got %v", err)
	}

	if _, err := update.Execute(ctx, UpdateTransactionInput{
		ID:         created.ID,
		VendorID:   f.farmer.ID,
		Quantities: fields(12, "600", "20", "50"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.resales.FindByTransactionID(ctx, created.ID); !errors.Is(err, domainerror.ErrMerchantTransactionNotFound) {
		t.Errorf("expected resale to be removed, got %v", err)
	}
}

func TestPaymentStatusAndPendingAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, _ := f.create().Execute(ctx, CreateTransactionInput{VendorID: f.farmer.ID, Quantities: fields(10, "500", "20", "100")})
	second, _ := f.create().Execute(ctx, CreateTransactionInput{VendorID: f.farmer.ID, Quantities: fields(5, "250", "10", "0")})
	if first == nil || second == nil {
		t.Fatal("failed to create transactions")
	}

	status := NewUpdatePaymentStatusUseCase(f.transactions)
	paid, err := status.Execute(ctx, UpdatePaymentStatusInput{ID: first.ID, Status: "paid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("status = %s, want paid", paid.PaymentStatus)
	}
	if _, err := status.Execute(ctx, UpdatePaymentStatusInput{ID: first.ID, Status: "settled"}); !errors.Is(err, domainerror.ErrInvalidPaymentStatus) {
		t.Errorf("expected ErrInvalidPaymentStatus, got %v", err)
	}

	pending, err := NewGetPendingAmountUseCase(f.transactions, f.vendors).Execute(ctx, f.farmer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Count != 1 || !pending.PendingAmount.Equal(second.FinalAmount) {
		t.Errorf("pending = %s over %d rows, want %s over 1", pending.PendingAmount, pending.Count, second.FinalAmount)
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	f := newFixture(t)
	created, _ := f.create().Execute(context.Background(), CreateTransactionInput{VendorID: f.farmer.ID, Quantities: fields(1, "50", "10", "0")})

	uc := NewDeleteTransactionUseCase(f.transactions)
	if err := uc.Execute(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Execute(context.Background(), created.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}
