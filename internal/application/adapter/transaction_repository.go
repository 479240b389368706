package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// TransactionFilter defines filter options for listing farmer transactions.
// A nil Window means no date restriction.
type TransactionFilter struct {
	VendorID      *uuid.UUID
	VendorKind    *entity.VendorKind
	PaymentStatus *entity.PaymentStatus
	Window        *valueobject.DateWindow
}

// TransactionRepository defines the interface for farmer transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new farmer transaction, and its resale when one is given.
	Create(ctx context.Context, transaction *entity.FarmerTransaction, resale *entity.MerchantTransaction) error

	// FindByID retrieves a farmer transaction with vendor and merchant names.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FarmerTransaction, error)

	// FindByFilter retrieves farmer transactions ordered by date and creation time, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.FarmerTransaction, error)

	// Update overwrites a farmer transaction and keeps its resale in step.
	// A cleared merchant link deletes the resale. A set link moves the existing
	// resale to that merchant, or inserts resale when none exists yet.
	Update(ctx context.Context, transaction *entity.FarmerTransaction, resale *entity.MerchantTransaction) error

	// UpdatePaymentStatus sets only the payment status.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// Delete removes a farmer transaction together with its resale.
	Delete(ctx context.Context, id uuid.UUID) error
}
