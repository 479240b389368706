package merchantexpense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence"
	"github.com/farmx/ledger-backend/internal/integration/persistence/persistencetest"
)

func TestExpenseLifecycle(t *testing.T) {
	db := persistencetest.OpenDB(t)
	vendors := persistence.NewVendorRepository(db)
	expenses := persistence.NewMerchantExpenseRepository(db)
	ctx := context.Background()
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	merchant := entity.NewVendor("Om Traders", "", "", "", entity.VendorKindMerchant)
	farmer := entity.NewVendor("Ravi", "", "", "", entity.VendorKindFarmer)
	for _, v := range []*entity.Vendor{merchant, farmer} {
		if err := vendors.Create(ctx, v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	create := NewCreateExpenseUseCase(expenses, vendors)

	invalid := []struct {
		name    string
		input   CreateExpenseInput
		wantErr error
	}{
		{"blank description", CreateExpenseInput{VendorID: merchant.ID, Date: date, Description: " ", Amount: decimal.NewFromInt(10)}, domainerror.ErrInvalidExpense},
		{"zero amount", CreateExpenseInput{VendorID: merchant.ID, Date: date, Description: "Hamali", Amount: decimal.Zero}, domainerror.ErrInvalidExpense},
		{"farmer vendor", CreateExpenseInput{VendorID: farmer.ID, Date: date, Description: "Hamali", Amount: decimal.NewFromInt(10)}, domainerror.ErrVendorKindMismatch},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := create.Execute(ctx, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	hamali, err := create.Execute(ctx, CreateExpenseInput{VendorID: merchant.ID, Date: date, Description: "Hamali", Amount: decimal.RequireFromString("150.005")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := create.Execute(ctx, CreateExpenseInput{VendorID: merchant.ID, Date: date, Description: "Transport", Amount: decimal.NewFromInt(300)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := NewListExpensesUseCase(expenses)
	listed, err := list.Execute(ctx, ListExpensesInput{VendorID: merchant.ID, Date: date})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Expenses) != 2 || valueobject.Format(listed.Total) != "450.01" {
		t.Errorf("listed %d expenses totalling %s, want 2 totalling 450.01", len(listed.Expenses), listed.Total)
	}

	if _, err := NewUpdateExpenseUseCase(expenses).Execute(ctx, UpdateExpenseInput{ID: hamali.ID, Description: "Hamali (corrected)", Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewDeleteExpenseUseCase(expenses).Execute(ctx, hamali.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, _ = list.Execute(ctx, ListExpensesInput{VendorID: merchant.ID, Date: date})
	if len(listed.Expenses) != 1 || valueobject.Format(listed.Total) != "300.00" {
		t.Errorf("after delete: %d expenses totalling %s", len(listed.Expenses), listed.Total)
	}
}
