package dto

import (
	"time"

	merchanttransaction "github.com/farmx/ledger-backend/internal/application/usecase/merchant_transaction"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
)

// MerchantTransactionRequest represents the request body for creating or
// replacing a resale.
type MerchantTransactionRequest struct {
	VendorID        string   `json:"vendor_id" binding:"required,uuid"`
	TransactionID   *string  `json:"transaction_id" binding:"omitempty,uuid"`
	FarmerName      string   `json:"farmer_name" binding:"omitempty,max=255"`
	Date            string   `json:"date" binding:"omitempty,ledgerdate"`
	Bags            Quantity `json:"bags"`
	Weight          Quantity `json:"weight"`
	DeductionPerBag Quantity `json:"deduction_per_bag"`
	Rate            Quantity `json:"rate"`
	Remarks         string   `json:"remarks" binding:"omitempty,max=1000"`
}

// QuantityFields parses the numeric fields of the request.
func (r MerchantTransactionRequest) QuantityFields() (merchanttransaction.QuantityFields, error) {
	var fields merchanttransaction.QuantityFields
	var err error

	if fields.Bags, err = r.Bags.Bags(); err != nil {
		return fields, err
	}
	if fields.Weight, err = r.Weight.Decimal("weight"); err != nil {
		return fields, err
	}
	if fields.DeductionPerBag, err = r.DeductionPerBag.OptionalDecimal("deduction_per_bag"); err != nil {
		return fields, err
	}
	if fields.Rate, err = r.Rate.Decimal("rate"); err != nil {
		return fields, err
	}
	return fields, nil
}

// ListMerchantTransactionsQuery holds the resale list filters.
type ListMerchantTransactionsQuery struct {
	DateRangeQuery
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"`
}

// MerchantTransactionResponse represents a resale in API responses.
type MerchantTransactionResponse struct {
	ID              string    `json:"id"`
	TransactionID   *string   `json:"transaction_id"`
	VendorID        string    `json:"vendor_id"`
	VendorName      string    `json:"vendor_name"`
	FarmerName      string    `json:"farmer_name"`
	Date            string    `json:"date"`
	Bags            int64     `json:"bags"`
	Weight          string    `json:"weight"`
	DeductionPerBag string    `json:"deduction_per_bag"`
	Deduction       string    `json:"deduction"`
	NetWeight       string    `json:"net_weight"`
	Rate            string    `json:"rate"`
	Amount          string    `json:"amount"`
	Remarks         string    `json:"remarks"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MerchantTotalsResponse represents the column sums of a resale listing.
type MerchantTotalsResponse struct {
	Bags        int64  `json:"bags"`
	Weight      string `json:"weight"`
	Deduction   string `json:"deduction"`
	NetWeight   string `json:"net_weight"`
	Amount      string `json:"amount"`
	FinalAmount string `json:"final_amount"`
	Commission  string `json:"commission"`
	FinalTotal  string `json:"final_total"`
}

// MerchantBillResponse is the one-day bill of a single merchant.
type MerchantBillResponse struct {
	Amount     string `json:"amount"`
	Expenses   string `json:"expenses"`
	Commission string `json:"commission"`
	Total      string `json:"total"`
}

// MerchantTransactionListResponse represents the response for listing resales.
type MerchantTransactionListResponse struct {
	Transactions          []MerchantTransactionResponse `json:"transactions"`
	Totals                MerchantTotalsResponse        `json:"totals"`
	Window                WindowResponse                `json:"window"`
	CommissionPersistable bool                          `json:"commission_persistable"`
	Bill                  *MerchantBillResponse         `json:"bill,omitempty"`
}

// ToMerchantTransactionResponse converts a MerchantTransaction entity to its DTO.
func ToMerchantTransactionResponse(t *entity.MerchantTransaction) MerchantTransactionResponse {
	return MerchantTransactionResponse{
		ID:              t.ID.String(),
		TransactionID:   formatUUID(t.TransactionID),
		VendorID:        t.VendorID.String(),
		VendorName:      t.VendorName,
		FarmerName:      t.FarmerName,
		Date:            FormatDate(t.Date),
		Bags:            t.Bags,
		Weight:          money(t.Weight),
		DeductionPerBag: money(t.DeductionPerBag),
		Deduction:       money(t.Deduction),
		NetWeight:       money(t.NetWeight),
		Rate:            money(t.Rate),
		Amount:          money(t.Amount),
		Remarks:         t.Remarks,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToMerchantTransactionResponses converts a slice of resales.
func ToMerchantTransactionResponses(rows []*entity.MerchantTransaction) []MerchantTransactionResponse {
	out := make([]MerchantTransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, ToMerchantTransactionResponse(t))
	}
	return out
}

// ToMerchantTotalsResponse converts merchant totals to their wire form.
func ToMerchantTotalsResponse(t ledger.MerchantTotals) MerchantTotalsResponse {
	return MerchantTotalsResponse{
		Bags:        t.Bags,
		Weight:      money(t.Weight),
		Deduction:   money(t.Deduction),
		NetWeight:   money(t.NetWeight),
		Amount:      money(t.Amount),
		FinalAmount: money(t.FinalAmount),
		Commission:  money(t.Commission),
		FinalTotal:  money(t.FinalTotal),
	}
}

// ToMerchantTransactionListResponse converts a listing output to its DTO.
func ToMerchantTransactionListResponse(output *merchanttransaction.ListMerchantTransactionsOutput) MerchantTransactionListResponse {
	response := MerchantTransactionListResponse{
		Transactions:          ToMerchantTransactionResponses(output.Transactions),
		Totals:                ToMerchantTotalsResponse(output.Totals),
		Window:                ToWindowResponse(output.Window),
		CommissionPersistable: output.CommissionPersistable,
	}
	if output.Bill != nil {
		response.Bill = &MerchantBillResponse{
			Amount:     money(output.Bill.Amount),
			Expenses:   money(output.Bill.Expenses),
			Commission: money(output.Bill.Commission),
			Total:      money(output.Bill.Total),
		}
	}
	return response
}
