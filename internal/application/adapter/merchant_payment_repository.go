package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// PaymentFilter defines the range of a merchant ledger query. Bounds are inclusive dates.
type PaymentFilter struct {
	VendorID uuid.UUID
	From     *time.Time
	To       *time.Time
}

// MerchantPaymentRepository defines the interface for merchant payment persistence operations.
type MerchantPaymentRepository interface {
	Create(ctx context.Context, payment *entity.MerchantPayment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantPayment, error)

	// FindByFilter retrieves a merchant's payments in chronological order.
	FindByFilter(ctx context.Context, filter PaymentFilter) ([]*entity.MerchantPayment, error)

	Update(ctx context.Context, payment *entity.MerchantPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
