// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

// vendorRepository implements the adapter.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository instance.
func NewVendorRepository(db *gorm.DB) adapter.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// Create creates a new vendor in the database.
func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(model.VendorFromEntity(vendor)).Error
}

// FindByID retrieves a vendor by its ID.
func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorModel model.VendorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&vendorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVendorNotFound
		}
		return nil, result.Error
	}
	return vendorModel.ToEntity(), nil
}

// FindAll retrieves vendors matching the filter ordered by name.
func (r *vendorRepository) FindAll(ctx context.Context, filter adapter.VendorFilter) ([]*entity.Vendor, error) {
	query := r.db.WithContext(ctx).Model(&model.VendorModel{})
	if filter.Kind != nil {
		query = query.Where("type = ?", string(*filter.Kind))
	}

	var vendorModels []model.VendorModel
	if err := query.Order("name ASC").Find(&vendorModels).Error; err != nil {
		return nil, err
	}

	vendors := make([]*entity.Vendor, len(vendorModels))
	for i := range vendorModels {
		vendors[i] = vendorModels[i].ToEntity()
	}
	return vendors, nil
}

// Update updates the contact details of an existing vendor. The type column is never written.
func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	result := r.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Updates(map[string]any{
			"name":           vendor.Name,
			"phone":          vendor.Phone,
			"account_number": vendor.AccountNumber,
			"address":        vendor.Address,
			"updated_at":     vendor.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrVendorNotFound
	}
	return nil
}

// Delete removes a vendor.
func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VendorModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrVendorNotFound
	}
	return nil
}

// HasRecords reports whether any ledger row references the vendor.
func (r *vendorRepository) HasRecords(ctx context.Context, id uuid.UUID) (bool, error) {
	checks := []struct {
		model any
		query string
		args  []any
	}{
		{&model.TransactionModel{}, "vendor_id = ? OR merchant_vendor_id = ?", []any{id, id}},
		{&model.MerchantTransactionModel{}, "vendor_id = ?", []any{id}},
		{&model.MerchantExpenseModel{}, "vendor_id = ?", []any{id}},
		{&model.MerchantCommissionModel{}, "vendor_id = ?", []any{id}},
		{&model.MerchantPaymentModel{}, "vendor_id = ?", []any{id}},
	}

	for _, check := range checks {
		var count int64
		if err := r.db.WithContext(ctx).Model(check.model).Where(check.query, check.args...).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
