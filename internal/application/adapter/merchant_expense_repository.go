package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// MerchantExpenseRepository defines the interface for merchant expense persistence operations.
type MerchantExpenseRepository interface {
	Create(ctx context.Context, expense *entity.MerchantExpense) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantExpense, error)

	// FindByVendorAndDate retrieves a merchant's expenses for one date, oldest first.
	FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]*entity.MerchantExpense, error)

	Update(ctx context.Context, expense *entity.MerchantExpense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
