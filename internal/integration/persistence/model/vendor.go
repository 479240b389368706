// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// VendorModel represents the vendors table in the database.
type VendorModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null;index"`
	Phone         string    `gorm:"type:varchar(20)"`
	AccountNumber string    `gorm:"type:varchar(50)"`
	Address       string    `gorm:"type:text"`
	Type          string    `gorm:"type:varchar(10);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the VendorModel.
func (VendorModel) TableName() string {
	return "vendors"
}

// ToEntity converts a VendorModel to a domain Vendor entity.
func (m *VendorModel) ToEntity() *entity.Vendor {
	return &entity.Vendor{
		ID:            m.ID,
		Name:          m.Name,
		Phone:         m.Phone,
		AccountNumber: m.AccountNumber,
		Address:       m.Address,
		Kind:          entity.VendorKind(m.Type),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// VendorFromEntity converts a domain Vendor entity to a VendorModel.
func VendorFromEntity(v *entity.Vendor) *VendorModel {
	return &VendorModel{
		ID:            v.ID,
		Name:          v.Name,
		Phone:         v.Phone,
		AccountNumber: v.AccountNumber,
		Address:       v.Address,
		Type:          string(v.Kind),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
