package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

// merchantExpenseRepository implements the adapter.MerchantExpenseRepository interface.
type merchantExpenseRepository struct {
	db *gorm.DB
}

// NewMerchantExpenseRepository creates a new merchant expense repository instance.
func NewMerchantExpenseRepository(db *gorm.DB) adapter.MerchantExpenseRepository {
	return &merchantExpenseRepository{
		db: db,
	}
}

func (r *merchantExpenseRepository) Create(ctx context.Context, expense *entity.MerchantExpense) error {
	return r.db.WithContext(ctx).Create(model.MerchantExpenseFromEntity(expense)).Error
}

func (r *merchantExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantExpense, error) {
	var expenseModel model.MerchantExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByVendorAndDate retrieves a merchant's expenses for one date, oldest first.
func (r *merchantExpenseRepository) FindByVendorAndDate(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]*entity.MerchantExpense, error) {
	var expenseModels []model.MerchantExpenseModel
	result := r.db.WithContext(ctx).
		Where("vendor_id = ? AND date = ?", vendorID, valueobject.CalendarDate(date)).
		Order("created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.MerchantExpense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

func (r *merchantExpenseRepository) Update(ctx context.Context, expense *entity.MerchantExpense) error {
	result := r.db.WithContext(ctx).
		Model(&model.MerchantExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"description": expense.Description,
			"amount":      expense.Amount,
			"updated_at":  expense.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

func (r *merchantExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MerchantExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}
