package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

// merchantPaymentRepository implements the adapter.MerchantPaymentRepository interface.
type merchantPaymentRepository struct {
	db *gorm.DB
}

// NewMerchantPaymentRepository creates a new merchant payment repository instance.
func NewMerchantPaymentRepository(db *gorm.DB) adapter.MerchantPaymentRepository {
	return &merchantPaymentRepository{
		db: db,
	}
}

func (r *merchantPaymentRepository) Create(ctx context.Context, payment *entity.MerchantPayment) error {
	return r.db.WithContext(ctx).Create(model.MerchantPaymentFromEntity(payment)).Error
}

func (r *merchantPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantPayment, error) {
	var paymentModel model.MerchantPaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByFilter retrieves a merchant's payments in chronological order.
func (r *merchantPaymentRepository) FindByFilter(ctx context.Context, filter adapter.PaymentFilter) ([]*entity.MerchantPayment, error) {
	query := r.db.WithContext(ctx).Where("vendor_id = ?", filter.VendorID)
	if filter.From != nil {
		query = query.Where("date >= ?", valueobject.CalendarDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", valueobject.CalendarDate(*filter.To))
	}

	var paymentModels []model.MerchantPaymentModel
	if err := query.Order("date ASC, created_at ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]*entity.MerchantPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntity()
	}
	return payments, nil
}

func (r *merchantPaymentRepository) Update(ctx context.Context, payment *entity.MerchantPayment) error {
	result := r.db.WithContext(ctx).
		Model(&model.MerchantPaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"date":       payment.Date,
			"type":       string(payment.Type),
			"amount":     payment.Amount,
			"updated_at": payment.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPaymentNotFound
	}
	return nil
}

func (r *merchantPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MerchantPaymentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPaymentNotFound
	}
	return nil
}
