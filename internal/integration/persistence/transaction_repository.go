package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new farmer transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new farmer transaction and, if given, its resale.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.FarmerTransaction, resale *entity.MerchantTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		if resale != nil {
			return tx.Omit(clause.Associations).Create(model.MerchantTransactionFromEntity(resale)).Error
		}
		return nil
	})
}

// FindByID retrieves a farmer transaction with vendor and merchant names.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FarmerTransaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Merchant").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves farmer transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.FarmerTransaction, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Preload("Vendor").
		Preload("Merchant")

	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.VendorKind != nil {
		kindVendors := r.db.Model(&model.VendorModel{}).Select("id").Where("type = ?", string(*filter.VendorKind))
		query = query.Where("vendor_id IN (?)", kindVendors)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filter.PaymentStatus))
	}
	query = applyWindow(query, "date", filter.Window)

	var transactionModels []model.TransactionModel
	if err := query.Order("date DESC, created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.FarmerTransaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Update overwrites a farmer transaction and keeps its resale consistent with the merchant link.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.FarmerTransaction, resale *entity.MerchantTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TransactionModel{}).Where("id = ?", transaction.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrTransactionNotFound
		}

		if err := tx.Omit(clause.Associations).Save(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}

		switch {
		case transaction.MerchantVendorID == nil:
			return tx.Where("transaction_id = ?", transaction.ID).Delete(&model.MerchantTransactionModel{}).Error
		case resale != nil:
			return tx.Omit(clause.Associations).Create(model.MerchantTransactionFromEntity(resale)).Error
		default:
			return tx.Model(&model.MerchantTransactionModel{}).
				Where("transaction_id = ?", transaction.ID).
				Updates(map[string]any{
					"vendor_id":  *transaction.MerchantVendorID,
					"updated_at": transaction.UpdatedAt,
				}).Error
		}
	})
}

// UpdatePaymentStatus sets only the payment status.
func (r *transactionRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a farmer transaction together with its resale.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.MerchantTransactionModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return nil
	})
}
