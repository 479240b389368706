package dto

import (
	"time"

	merchantpayment "github.com/farmx/ledger-backend/internal/application/usecase/merchant_payment"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// CreatePaymentRequest represents the request body for a ledger line.
// Type accepts receivable, received or the account book labels.
type CreatePaymentRequest struct {
	VendorID string   `json:"vendor_id" binding:"required,uuid"`
	Date     string   `json:"date" binding:"required,ledgerdate"`
	Type     string   `json:"type" binding:"required,paymenttype"`
	Amount   Quantity `json:"amount"`
}

// UpdatePaymentRequest represents the request body for correcting a ledger line.
type UpdatePaymentRequest struct {
	Date   string   `json:"date" binding:"required,ledgerdate"`
	Type   string   `json:"type" binding:"required,paymenttype"`
	Amount Quantity `json:"amount"`
}

// LedgerQuery holds the optional from and to bounds of a ledger view.
type LedgerQuery struct {
	From string `form:"from" binding:"omitempty,ledgerdate"`
	To   string `form:"to" binding:"omitempty,ledgerdate"`
}

// PaymentResponse represents a ledger line in API responses.
type PaymentResponse struct {
	ID        string    `json:"id"`
	VendorID  string    `json:"vendor_id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerResponse represents a merchant's running account.
type LedgerResponse struct {
	Payments        []PaymentResponse `json:"payments"`
	TotalReceivable string            `json:"total_receivable"`
	TotalReceived   string            `json:"total_received"`
	Balance         string            `json:"balance"`
}

// ToPaymentResponse converts a MerchantPayment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.MerchantPayment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		VendorID:  p.VendorID.String(),
		Date:      FormatDate(p.Date),
		Type:      string(p.Type),
		Amount:    money(p.Amount),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToLedgerResponse converts a ledger output to a LedgerResponse DTO.
func ToLedgerResponse(output *merchantpayment.GetLedgerOutput) LedgerResponse {
	response := LedgerResponse{
		Payments:        make([]PaymentResponse, 0, len(output.Payments)),
		TotalReceivable: money(output.Balance.TotalReceivable),
		TotalReceived:   money(output.Balance.TotalReceived),
		Balance:         money(output.Balance.Balance),
	}
	for _, p := range output.Payments {
		response.Payments = append(response.Payments, ToPaymentResponse(p))
	}
	return response
}
