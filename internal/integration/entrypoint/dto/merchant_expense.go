package dto

import (
	"time"

	merchantexpense "github.com/farmx/ledger-backend/internal/application/usecase/merchant_expense"
	"github.com/farmx/ledger-backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	VendorID    string   `json:"vendor_id" binding:"required,uuid"`
	Date        string   `json:"date" binding:"required,ledgerdate"`
	Description string   `json:"description" binding:"required,max=255"`
	Amount      Quantity `json:"amount"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description string   `json:"description" binding:"required,max=255"`
	Amount      Quantity `json:"amount"`
}

// ListExpensesQuery selects one merchant's expenses on one date.
type ListExpensesQuery struct {
	MerchantID string `form:"merchant_id" binding:"required,uuid"`
	Date       string `form:"date" binding:"required,ledgerdate"`
}

// ExpenseResponse represents a merchant expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts a MerchantExpense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.MerchantExpense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		VendorID:    e.VendorID.String(),
		Date:        FormatDate(e.Date),
		Description: e.Description,
		Amount:      money(e.Amount),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a listing output to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *merchantexpense.ListExpensesOutput) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(output.Expenses)),
		Total:    money(output.Total),
	}
	for _, e := range output.Expenses {
		response.Expenses = append(response.Expenses, ToExpenseResponse(e))
	}
	return response
}
