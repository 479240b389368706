// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// VendorKind distinguishes produce sellers from produce buyers.
type VendorKind string

const (
	VendorKindFarmer   VendorKind = "farmer"
	VendorKindMerchant VendorKind = "merchant"
)

// IsValid reports whether k is one of the known vendor kinds.
func (k VendorKind) IsValid() bool {
	switch k {
	case VendorKindFarmer, VendorKindMerchant:
		return true
	}
	return false
}

// ParseVendorKind converts a raw label into a VendorKind.
func ParseVendorKind(raw string) (VendorKind, error) {
	kind := VendorKind(raw)
	if !kind.IsValid() {
		return "", domainerror.NewVendorError(
			domainerror.ErrCodeInvalidVendorKind,
			"invalid vendor type "+raw,
			domainerror.ErrInvalidVendorKind,
		)
	}
	return kind, nil
}

// Vendor is a farmer or merchant the business trades with.
// Kind is fixed at creation.
type Vendor struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	AccountNumber string
	Address       string
	Kind          VendorKind
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewVendor creates a new Vendor entity.
func NewVendor(name, phone, accountNumber, address string, kind VendorKind) *Vendor {
	now := time.Now().UTC()

	return &Vendor{
		ID:            uuid.New(),
		Name:          name,
		Phone:         phone,
		AccountNumber: accountNumber,
		Address:       address,
		Kind:          kind,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsFarmer reports whether the vendor sells produce to the business.
func (v *Vendor) IsFarmer() bool {
	return v.Kind == VendorKindFarmer
}

// IsMerchant reports whether the vendor buys produce from the business.
func (v *Vendor) IsMerchant() bool {
	return v.Kind == VendorKindMerchant
}
