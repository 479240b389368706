package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// MerchantExpenseModel represents the merchant_expenses table in the database.
type MerchantExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_merchant_expenses_vendor_date"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_merchant_expenses_vendor_date"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MerchantExpenseModel.
func (MerchantExpenseModel) TableName() string {
	return "merchant_expenses"
}

// ToEntity converts a MerchantExpenseModel to a domain MerchantExpense entity.
func (m *MerchantExpenseModel) ToEntity() *entity.MerchantExpense {
	return &entity.MerchantExpense{
		ID:          m.ID,
		VendorID:    m.VendorID,
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MerchantExpenseFromEntity converts a domain MerchantExpense entity to a MerchantExpenseModel.
func MerchantExpenseFromEntity(e *entity.MerchantExpense) *MerchantExpenseModel {
	return &MerchantExpenseModel{
		ID:          e.ID,
		VendorID:    e.VendorID,
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// MerchantCommissionModel represents the merchant_commissions table in the database.
type MerchantCommissionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_merchant_commissions_vendor_date"`
	Date      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_merchant_commissions_vendor_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Weight    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	Vendor *VendorModel `gorm:"foreignKey:VendorID;references:ID"`
}

// TableName returns the table name for the MerchantCommissionModel.
func (MerchantCommissionModel) TableName() string {
	return "merchant_commissions"
}

// ToEntity converts a MerchantCommissionModel to a domain MerchantCommission entity.
func (m *MerchantCommissionModel) ToEntity() *entity.MerchantCommission {
	c := &entity.MerchantCommission{
		ID:        m.ID,
		VendorID:  m.VendorID,
		Date:      m.Date,
		Amount:    m.Amount,
		Weight:    m.Weight,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Vendor != nil {
		c.VendorName = m.Vendor.Name
	}
	return c
}

// MerchantCommissionFromEntity converts a domain MerchantCommission entity to a MerchantCommissionModel.
func MerchantCommissionFromEntity(c *entity.MerchantCommission) *MerchantCommissionModel {
	return &MerchantCommissionModel{
		ID:        c.ID,
		VendorID:  c.VendorID,
		Date:      c.Date,
		Amount:    c.Amount,
		Weight:    c.Weight,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// MerchantPaymentModel represents the merchant_payments table in the database.
type MerchantPaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MerchantPaymentModel.
func (MerchantPaymentModel) TableName() string {
	return "merchant_payments"
}

// ToEntity converts a MerchantPaymentModel to a domain MerchantPayment entity.
// The stored type is copied as-is so that unknown labels surface when the ledger is balanced.
func (m *MerchantPaymentModel) ToEntity() *entity.MerchantPayment {
	return &entity.MerchantPayment{
		ID:        m.ID,
		VendorID:  m.VendorID,
		Date:      m.Date,
		Type:      entity.PaymentType(m.Type),
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MerchantPaymentFromEntity converts a domain MerchantPayment entity to a MerchantPaymentModel.
func MerchantPaymentFromEntity(p *entity.MerchantPayment) *MerchantPaymentModel {
	return &MerchantPaymentModel{
		ID:        p.ID,
		VendorID:  p.VendorID,
		Date:      p.Date,
		Type:      string(p.Type),
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// AllModels lists every model migrated at startup.
func AllModels() []any {
	return []any{
		&VendorModel{},
		&TransactionModel{},
		&MerchantTransactionModel{},
		&MerchantExpenseModel{},
		&MerchantCommissionModel{},
		&MerchantPaymentModel{},
	}
}
