// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// VendorFilter defines filter options for listing vendors.
type VendorFilter struct {
	Kind *entity.VendorKind
}

// VendorRepository defines the interface for vendor persistence operations.
type VendorRepository interface {
	// Create creates a new vendor in the database.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// FindByID retrieves a vendor by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindAll retrieves vendors matching the filter ordered by name.
	FindAll(ctx context.Context, filter VendorFilter) ([]*entity.Vendor, error)

	// Update updates the contact details of an existing vendor.
	Update(ctx context.Context, vendor *entity.Vendor) error

	// Delete removes a vendor.
	Delete(ctx context.Context, id uuid.UUID) error

	// HasRecords reports whether any transaction, expense, commission or payment references the vendor.
	HasRecords(ctx context.Context, id uuid.UUID) (bool, error)
}
