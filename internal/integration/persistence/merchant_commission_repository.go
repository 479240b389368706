package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

// merchantCommissionRepository implements the adapter.MerchantCommissionRepository interface.
type merchantCommissionRepository struct {
	db *gorm.DB
}

// NewMerchantCommissionRepository creates a new merchant commission repository instance.
func NewMerchantCommissionRepository(db *gorm.DB) adapter.MerchantCommissionRepository {
	return &merchantCommissionRepository{
		db: db,
	}
}

// Upsert stores the commission for (vendor, date). On update the commission
// entity takes the existing row's ID and creation time.
func (r *merchantCommissionRepository) Upsert(ctx context.Context, commission *entity.MerchantCommission) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.MerchantCommissionModel
		err := tx.Where("vendor_id = ? AND date = ?", commission.VendorID, commission.Date).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Omit(clause.Associations).Create(model.MerchantCommissionFromEntity(commission)).Error
		}
		if err != nil {
			return err
		}

		commission.ID = existing.ID
		commission.CreatedAt = existing.CreatedAt
		return tx.Model(&model.MerchantCommissionModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"amount":     commission.Amount,
				"weight":     commission.Weight,
				"updated_at": commission.UpdatedAt,
			}).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *merchantCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantCommission, error) {
	return r.findOne(ctx, r.db.Where("id = ?", id))
}

func (r *merchantCommissionRepository) FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (*entity.MerchantCommission, error) {
	return r.findOne(ctx, r.db.Where("vendor_id = ? AND date = ?", vendorID, valueobject.CalendarDate(date)))
}

func (r *merchantCommissionRepository) findOne(ctx context.Context, scope *gorm.DB) (*entity.MerchantCommission, error) {
	var commissionModel model.MerchantCommissionModel
	result := r.db.WithContext(ctx).
		Preload("Vendor").
		Where(scope).
		First(&commissionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCommissionNotFound
		}
		return nil, result.Error
	}
	return commissionModel.ToEntity(), nil
}

// FindByWindow retrieves commissions inside the window with vendor names.
func (r *merchantCommissionRepository) FindByWindow(ctx context.Context, window valueobject.DateWindow) ([]*entity.MerchantCommission, error) {
	query := r.db.WithContext(ctx).
		Model(&model.MerchantCommissionModel{}).
		Preload("Vendor")
	query = applyWindow(query, "date", &window)

	var commissionModels []model.MerchantCommissionModel
	if err := query.Order("date ASC").Find(&commissionModels).Error; err != nil {
		return nil, err
	}

	commissions := make([]*entity.MerchantCommission, len(commissionModels))
	for i := range commissionModels {
		commissions[i] = commissionModels[i].ToEntity()
	}
	return commissions, nil
}

func (r *merchantCommissionRepository) Update(ctx context.Context, commission *entity.MerchantCommission) error {
	result := r.db.WithContext(ctx).
		Model(&model.MerchantCommissionModel{}).
		Where("id = ?", commission.ID).
		Updates(map[string]any{
			"amount":     commission.Amount,
			"weight":     commission.Weight,
			"updated_at": commission.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCommissionNotFound
	}
	return nil
}
