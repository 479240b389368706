package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// MerchantTransactionFilter defines filter options for listing merchant transactions.
type MerchantTransactionFilter struct {
	VendorID *uuid.UUID
	Window   *valueobject.DateWindow
}

// MerchantTransactionRepository defines the interface for merchant transaction persistence operations.
type MerchantTransactionRepository interface {
	// Create stores a resale. When it references a farmer transaction, that
	// transaction's merchant link is set in the same database transaction.
	Create(ctx context.Context, transaction *entity.MerchantTransaction) error

	// FindByID retrieves a merchant transaction with its vendor name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantTransaction, error)

	// FindByTransactionID retrieves the resale of a farmer transaction.
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.MerchantTransaction, error)

	// FindByFilter retrieves merchant transactions ordered by date and creation time, newest first.
	FindByFilter(ctx context.Context, filter MerchantTransactionFilter) ([]*entity.MerchantTransaction, error)

	// Update overwrites a merchant transaction and re-points the source farmer link to its vendor.
	Update(ctx context.Context, transaction *entity.MerchantTransaction) error

	// Delete removes a merchant transaction and clears the source farmer link.
	Delete(ctx context.Context, id uuid.UUID) error
}
