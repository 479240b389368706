package dto

import (
	"time"

	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// CreateVendorRequest represents the request body for vendor creation.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Phone         string `json:"phone" binding:"omitempty,max=32"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=64"`
	Address       string `json:"address" binding:"omitempty,max=500"`
	Type          string `json:"type" binding:"required,vendorkind"`
}

// UpdateVendorRequest represents the request body for vendor update.
// Type may be sent but must match the stored type.
type UpdateVendorRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Phone         string `json:"phone" binding:"omitempty,max=32"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=64"`
	Address       string `json:"address" binding:"omitempty,max=500"`
	Type          string `json:"type" binding:"omitempty,vendorkind"`
}

// ListVendorsQuery holds the optional type filter.
type ListVendorsQuery struct {
	Type string `form:"type" binding:"omitempty,vendorkind"`
}

// VendorResponse represents a single vendor in API responses.
type VendorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	AccountNumber string    `json:"account_number"`
	Address       string    `json:"address"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VendorListResponse represents the response for listing vendors.
type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

// ToVendorResponse converts a domain Vendor entity to a VendorResponse DTO.
func ToVendorResponse(v *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		Phone:         v.Phone,
		AccountNumber: v.AccountNumber,
		Address:       v.Address,
		Type:          string(v.Kind),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// ToVendorListResponse converts vendors to a VendorListResponse DTO.
func ToVendorListResponse(vendors []*entity.Vendor) VendorListResponse {
	response := VendorListResponse{Vendors: make([]VendorResponse, 0, len(vendors))}
	for _, v := range vendors {
		response.Vendors = append(response.Vendors, ToVendorResponse(v))
	}
	return response
}
