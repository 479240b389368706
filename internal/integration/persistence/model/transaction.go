package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// TransactionModel represents the farmer transactions table in the database.
type TransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Bags             int64           `gorm:"type:integer;not null;default:0"`
	Weight           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DeductionPerBag  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Deduction        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	NetWeight        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Rate             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Expenses         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FinalAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentStatus    string          `gorm:"type:varchar(10);not null;default:'pending';index"`
	Remarks          string          `gorm:"type:text"`
	MerchantVendorID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Vendor   *VendorModel `gorm:"foreignKey:VendorID;references:ID"`
	Merchant *VendorModel `gorm:"foreignKey:MerchantVendorID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain FarmerTransaction entity.
func (m *TransactionModel) ToEntity() *entity.FarmerTransaction {
	t := &entity.FarmerTransaction{
		ID:               m.ID,
		Date:             m.Date,
		VendorID:         m.VendorID,
		Bags:             m.Bags,
		Weight:           m.Weight,
		DeductionPerBag:  m.DeductionPerBag,
		Deduction:        m.Deduction,
		NetWeight:        m.NetWeight,
		Rate:             m.Rate,
		Amount:           m.Amount,
		Expenses:         m.Expenses,
		FinalAmount:      m.FinalAmount,
		PaymentStatus:    entity.PaymentStatus(m.PaymentStatus),
		Remarks:          m.Remarks,
		MerchantVendorID: m.MerchantVendorID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Vendor != nil {
		t.VendorName = m.Vendor.Name
	}
	if m.Merchant != nil {
		t.MerchantName = m.Merchant.Name
	}
	return t
}

// TransactionFromEntity converts a domain FarmerTransaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.FarmerTransaction) *TransactionModel {
	return &TransactionModel{
		ID:               t.ID,
		Date:             t.Date,
		VendorID:         t.VendorID,
		Bags:             t.Bags,
		Weight:           t.Weight,
		DeductionPerBag:  t.DeductionPerBag,
		Deduction:        t.Deduction,
		NetWeight:        t.NetWeight,
		Rate:             t.Rate,
		Amount:           t.Amount,
		Expenses:         t.Expenses,
		FinalAmount:      t.FinalAmount,
		PaymentStatus:    string(t.PaymentStatus),
		Remarks:          t.Remarks,
		MerchantVendorID: t.MerchantVendorID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
