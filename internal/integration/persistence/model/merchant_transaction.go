package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// MerchantTransactionModel represents the merchant_transactions table in the database.
type MerchantTransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID   *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FarmerName      string          `gorm:"type:varchar(255)"`
	Bags            int64           `gorm:"type:integer;not null;default:0"`
	Weight          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DeductionPerBag decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Deduction       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	NetWeight       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Rate            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Remarks         string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Vendor *VendorModel `gorm:"foreignKey:VendorID;references:ID"`
}

// TableName returns the table name for the MerchantTransactionModel.
func (MerchantTransactionModel) TableName() string {
	return "merchant_transactions"
}

// ToEntity converts a MerchantTransactionModel to a domain MerchantTransaction entity.
func (m *MerchantTransactionModel) ToEntity() *entity.MerchantTransaction {
	t := &entity.MerchantTransaction{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		VendorID:        m.VendorID,
		FarmerName:      m.FarmerName,
		Bags:            m.Bags,
		Weight:          m.Weight,
		DeductionPerBag: m.DeductionPerBag,
		Deduction:       m.Deduction,
		NetWeight:       m.NetWeight,
		Rate:            m.Rate,
		Amount:          m.Amount,
		Date:            m.Date,
		Remarks:         m.Remarks,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Vendor != nil {
		t.VendorName = m.Vendor.Name
	}
	return t
}

// MerchantTransactionFromEntity converts a domain MerchantTransaction entity to a MerchantTransactionModel.
func MerchantTransactionFromEntity(t *entity.MerchantTransaction) *MerchantTransactionModel {
	return &MerchantTransactionModel{
		ID:              t.ID,
		TransactionID:   t.TransactionID,
		VendorID:        t.VendorID,
		FarmerName:      t.FarmerName,
		Bags:            t.Bags,
		Weight:          t.Weight,
		DeductionPerBag: t.DeductionPerBag,
		Deduction:       t.Deduction,
		NetWeight:       t.NetWeight,
		Rate:            t.Rate,
		Amount:          t.Amount,
		Date:            t.Date,
		Remarks:         t.Remarks,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
