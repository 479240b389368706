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

// merchantTransactionRepository implements the adapter.MerchantTransactionRepository interface.
type merchantTransactionRepository struct {
	db *gorm.DB
}

// NewMerchantTransactionRepository creates a new merchant transaction repository instance.
func NewMerchantTransactionRepository(db *gorm.DB) adapter.MerchantTransactionRepository {
	return &merchantTransactionRepository{
		db: db,
	}
}

// Create stores a resale and links its source farmer transaction to the merchant.
func (r *merchantTransactionRepository) Create(ctx context.Context, transaction *entity.MerchantTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model.MerchantTransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return linkSource(tx, transaction)
	})
}

// FindByID retrieves a merchant transaction with its vendor name.
func (r *merchantTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantTransaction, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByTransactionID retrieves the resale of a farmer transaction.
func (r *merchantTransactionRepository) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.MerchantTransaction, error) {
	return r.findOne(ctx, "transaction_id = ?", transactionID)
}

func (r *merchantTransactionRepository) findOne(ctx context.Context, query string, arg any) (*entity.MerchantTransaction, error) {
	var transactionModel model.MerchantTransactionModel
	result := r.db.WithContext(ctx).
		Preload("Vendor").
		Where(query, arg).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMerchantTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves merchant transactions matching the filter, newest first.
func (r *merchantTransactionRepository) FindByFilter(ctx context.Context, filter adapter.MerchantTransactionFilter) ([]*entity.MerchantTransaction, error) {
	query := r.db.WithContext(ctx).
		Model(&model.MerchantTransactionModel{}).
		Preload("Vendor")

	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	query = applyWindow(query, "date", filter.Window)

	var transactionModels []model.MerchantTransactionModel
	if err := query.Order("date DESC, created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.MerchantTransaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Update overwrites a merchant transaction and re-points the source farmer link.
func (r *merchantTransactionRepository) Update(ctx context.Context, transaction *entity.MerchantTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.MerchantTransactionModel{}).Where("id = ?", transaction.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrMerchantTransactionNotFound
		}

		if err := tx.Omit(clause.Associations).Save(model.MerchantTransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return linkSource(tx, transaction)
	})
}

// Delete removes a merchant transaction and clears the source farmer link.
func (r *merchantTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.MerchantTransactionModel
		if err := tx.Where("id = ?", id).First(&transactionModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrMerchantTransactionNotFound
			}
			return err
		}

		if err := tx.Delete(&model.MerchantTransactionModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		if transactionModel.TransactionID == nil {
			return nil
		}
		return tx.Model(&model.TransactionModel{}).
			Where("id = ?", *transactionModel.TransactionID).
			Update("merchant_vendor_id", nil).Error
	})
}

// linkSource points the source farmer transaction at the resale's merchant.
func linkSource(tx *gorm.DB, transaction *entity.MerchantTransaction) error {
	if transaction.TransactionID == nil {
		return nil
	}
	return tx.Model(&model.TransactionModel{}).
		Where("id = ?", *transaction.TransactionID).
		Update("merchant_vendor_id", transaction.VendorID).Error
}
