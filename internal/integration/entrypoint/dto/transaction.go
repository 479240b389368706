package dto

import (
	"time"

	"github.com/farmx/ledger-backend/internal/application/usecase/transaction"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// TransactionRequest represents the request body for creating or replacing
// a farmer transaction. Quantities may be numbers or numeric strings.
type TransactionRequest struct {
	VendorID         string   `json:"vendor_id" binding:"required,uuid"`
	Date             string   `json:"date" binding:"omitempty,ledgerdate"`
	Bags             Quantity `json:"bags"`
	Weight           Quantity `json:"weight"`
	DeductionPerBag  Quantity `json:"deduction_per_bag"`
	Rate             Quantity `json:"rate"`
	Expenses         Quantity `json:"expenses"`
	Remarks          string   `json:"remarks" binding:"omitempty,max=1000"`
	MerchantVendorID *string  `json:"merchant_vendor_id" binding:"omitempty,uuid"`
}

// QuantityFields parses the numeric fields of the request.
func (r TransactionRequest) QuantityFields() (transaction.QuantityFields, error) {
	var fields transaction.QuantityFields
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
	if fields.Expenses, err = r.Expenses.Decimal("expenses"); err != nil {
		return fields, err
	}
	return fields, nil
}

// UpdatePaymentStatusRequest represents the request body for a payment status change.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,paymentstatus"`
}

// ListTransactionsQuery holds the farmer transaction list filters.
type ListTransactionsQuery struct {
	DateRangeQuery
	VendorID   string `form:"vendor_id" binding:"omitempty,uuid"`
	VendorType string `form:"vendor_type" binding:"omitempty,vendorkind"`
}

// TransactionResponse represents a farmer transaction in API responses.
type TransactionResponse struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	VendorID         string    `json:"vendor_id"`
	VendorName       string    `json:"vendor_name"`
	Bags             int64     `json:"bags"`
	Weight           string    `json:"weight"`
	DeductionPerBag  string    `json:"deduction_per_bag"`
	Deduction        string    `json:"deduction"`
	NetWeight        string    `json:"net_weight"`
	Rate             string    `json:"rate"`
	Amount           string    `json:"amount"`
	Expenses         string    `json:"expenses"`
	FinalAmount      string    `json:"final_amount"`
	PaymentStatus    string    `json:"payment_status"`
	Remarks          string    `json:"remarks"`
	MerchantVendorID *string   `json:"merchant_vendor_id"`
	MerchantName     string    `json:"merchant_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FarmerTotalsResponse represents the column sums of a farmer transaction listing.
type FarmerTotalsResponse struct {
	Bags        int64  `json:"bags"`
	Weight      string `json:"weight"`
	Deduction   string `json:"deduction"`
	NetWeight   string `json:"net_weight"`
	Amount      string `json:"amount"`
	Expenses    string `json:"expenses"`
	FinalAmount string `json:"final_amount"`
}

// TransactionListResponse represents the response for listing farmer transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       FarmerTotalsResponse  `json:"totals"`
	Window       WindowResponse        `json:"window"`
}

// PendingAmountResponse represents the unpaid balance owed to a farmer.
type PendingAmountResponse struct {
	VendorID      string `json:"vendor_id"`
	PendingAmount string `json:"pending_amount"`
	Count         int    `json:"count"`
}

// ToTransactionResponse converts a FarmerTransaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.FarmerTransaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID.String(),
		Date:             FormatDate(t.Date),
		VendorID:         t.VendorID.String(),
		VendorName:       t.VendorName,
		Bags:             t.Bags,
		Weight:           money(t.Weight),
		DeductionPerBag:  money(t.DeductionPerBag),
		Deduction:        money(t.Deduction),
		NetWeight:        money(t.NetWeight),
		Rate:             money(t.Rate),
		Amount:           money(t.Amount),
		Expenses:         money(t.Expenses),
		FinalAmount:      money(t.FinalAmount),
		PaymentStatus:    string(t.PaymentStatus),
		Remarks:          t.Remarks,
		MerchantVendorID: formatUUID(t.MerchantVendorID),
		MerchantName:     t.MerchantName,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of farmer transactions.
func ToTransactionResponses(rows []*entity.FarmerTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}

// ToFarmerTotalsResponse converts farmer totals to their wire form.
func ToFarmerTotalsResponse(t ledger.FarmerTotals) FarmerTotalsResponse {
	return FarmerTotalsResponse{
		Bags:        t.Bags,
		Weight:      money(t.Weight),
		Deduction:   money(t.Deduction),
		NetWeight:   money(t.NetWeight),
		Amount:      money(t.Amount),
		Expenses:    money(t.Expenses),
		FinalAmount: money(t.FinalAmount),
	}
}

// ToTransactionListResponse converts a listing output to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Totals:       ToFarmerTotalsResponse(output.Totals),
		Window:       ToWindowResponse(output.Window),
	}
}

// ToPendingAmountResponse converts a pending amount output.
func ToPendingAmountResponse(output *transaction.GetPendingAmountOutput) PendingAmountResponse {
	return PendingAmountResponse{
		VendorID:      output.VendorID.String(),
		PendingAmount: valueobject.Format(output.PendingAmount),
		Count:         output.Count,
	}
}
