package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// MerchantCommissionRepository defines the interface for merchant commission persistence operations.
type MerchantCommissionRepository interface {
	// Upsert stores the commission for (vendor, date). An existing row keeps its ID
	// and takes the new amount and weight. Returns true when a row was created.
	Upsert(ctx context.Context, commission *entity.MerchantCommission) (bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantCommission, error)
	FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (*entity.MerchantCommission, error)

	// FindByWindow retrieves commissions inside the window with vendor names.
	FindByWindow(ctx context.Context, window valueobject.DateWindow) ([]*entity.MerchantCommission, error)

	Update(ctx context.Context, commission *entity.MerchantCommission) error
}
