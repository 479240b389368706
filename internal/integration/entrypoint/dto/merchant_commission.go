package dto

import (
	"time"

	merchantcommission "github.com/farmx/ledger-backend/internal/application/usecase/merchant_commission"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// UpsertCommissionRequest represents the request body for storing a commission.
type UpsertCommissionRequest struct {
	VendorID string   `json:"vendor_id" binding:"required,uuid"`
	Date     string   `json:"date" binding:"required,ledgerdate"`
	Amount   Quantity `json:"amount"`
	Weight   Quantity `json:"weight"`
}

// UpdateCommissionRequest represents the request body for correcting a commission.
type UpdateCommissionRequest struct {
	Amount Quantity `json:"amount"`
	Weight Quantity `json:"weight"`
}

// ComputeCommissionRequest asks for the commission over a merchant's resales.
// Without dates the window is today.
type ComputeCommissionRequest struct {
	VendorID  string `json:"vendor_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"omitempty,ledgerdate"`
	EndDate   string `json:"end_date" binding:"omitempty,ledgerdate"`
	Persist   bool   `json:"persist"`
}

// CommissionResponse represents a stored commission in API responses.
type CommissionResponse struct {
	ID         string    `json:"id"`
	VendorID   string    `json:"vendor_id"`
	VendorName string    `json:"vendor_name,omitempty"`
	Date       string    `json:"date"`
	Amount     string    `json:"amount"`
	Weight     string    `json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ComputeCommissionResponse represents the result of a commission computation.
type ComputeCommissionResponse struct {
	VendorID    string              `json:"vendor_id"`
	Window      WindowResponse      `json:"window"`
	TotalWeight string              `json:"total_weight"`
	Commission  string              `json:"commission"`
	Persisted   bool                `json:"persisted"`
	Record      *CommissionResponse `json:"record,omitempty"`
	Warning     string              `json:"warning,omitempty"`
}

// ToCommissionResponse converts a MerchantCommission entity to a CommissionResponse DTO.
func ToCommissionResponse(c *entity.MerchantCommission) CommissionResponse {
	return CommissionResponse{
		ID:         c.ID.String(),
		VendorID:   c.VendorID.String(),
		VendorName: c.VendorName,
		Date:       FormatDate(c.Date),
		Amount:     money(c.Amount),
		Weight:     money(c.Weight),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToComputeCommissionResponse converts a computation output to its DTO.
func ToComputeCommissionResponse(output *merchantcommission.ComputeCommissionOutput) ComputeCommissionResponse {
	response := ComputeCommissionResponse{
		VendorID:    output.VendorID.String(),
		Window:      ToWindowResponse(output.Window),
		TotalWeight: money(output.TotalWeight),
		Commission:  money(output.Commission),
		Persisted:   output.Persisted,
	}
	if output.Record != nil {
		record := ToCommissionResponse(output.Record)
		response.Record = &record
	}
	if output.Warning != nil {
		response.Warning = output.Warning.Error()
	}
	return response
}
