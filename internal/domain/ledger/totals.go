// Package ledger aggregates recorded transactions into report totals and running balances.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// FarmerTotals sums the quantities of a set of farmer transactions.
type FarmerTotals struct {
	Bags        int64
	Weight      decimal.Decimal
	Deduction   decimal.Decimal
	NetWeight   decimal.Decimal
	Amount      decimal.Decimal
	Expenses    decimal.Decimal
	FinalAmount decimal.Decimal
}

// MerchantTotals sums the quantities of a set of merchant transactions.
// FinalAmount stays zero because merchant rows carry none.
type MerchantTotals struct {
	Bags        int64
	Weight      decimal.Decimal
	Deduction   decimal.Decimal
	NetWeight   decimal.Decimal
	Amount      decimal.Decimal
	FinalAmount decimal.Decimal
	Commission  decimal.Decimal
	FinalTotal  decimal.Decimal
}

// SumFarmerTransactions totals farmer transactions using exact decimal addition.
func SumFarmerTransactions(rows []*entity.FarmerTransaction) FarmerTotals {
	totals := FarmerTotals{}
	for _, row := range rows {
		totals.Bags += row.Bags
		totals.Weight = totals.Weight.Add(row.Weight)
		totals.Deduction = totals.Deduction.Add(row.Deduction)
		totals.NetWeight = totals.NetWeight.Add(row.NetWeight)
		totals.Amount = totals.Amount.Add(row.Amount)
		totals.Expenses = totals.Expenses.Add(row.Expenses)
		totals.FinalAmount = totals.FinalAmount.Add(row.FinalAmount)
	}
	return totals.round()
}

func (t FarmerTotals) round() FarmerTotals {
	t.Weight = t.Weight.Round(valueobject.Scale)
	t.Deduction = t.Deduction.Round(valueobject.Scale)
	t.NetWeight = t.NetWeight.Round(valueobject.Scale)
	t.Amount = t.Amount.Round(valueobject.Scale)
	t.Expenses = t.Expenses.Round(valueobject.Scale)
	t.FinalAmount = t.FinalAmount.Round(valueobject.Scale)
	return t
}

// SumMerchantTransactions totals merchant transactions and applies the commission rule
// to the summed gross weight.
func SumMerchantTransactions(rows []*entity.MerchantTransaction, rule valueobject.CommissionRule) MerchantTotals {
	totals := MerchantTotals{}
	for _, row := range rows {
		totals.Bags += row.Bags
		totals.Weight = totals.Weight.Add(row.Weight)
		totals.Deduction = totals.Deduction.Add(row.Deduction)
		totals.NetWeight = totals.NetWeight.Add(row.NetWeight)
		totals.Amount = totals.Amount.Add(row.Amount)
	}

	totals.Weight = totals.Weight.Round(valueobject.Scale)
	totals.Deduction = totals.Deduction.Round(valueobject.Scale)
	totals.NetWeight = totals.NetWeight.Round(valueobject.Scale)
	totals.Amount = totals.Amount.Round(valueobject.Scale)
	totals.Commission = rule.Compute(totals.Weight)
	totals.FinalTotal = totals.FinalAmount.Add(totals.Commission)
	return totals
}

// SumPendingAmount totals the final amount still owed to a farmer.
func SumPendingAmount(rows []*entity.FarmerTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row.PaymentStatus == entity.PaymentStatusPending {
			total = total.Add(row.FinalAmount)
		}
	}
	return total.Round(valueobject.Scale)
}

// SumExpenses totals merchant expenses.
func SumExpenses(rows []*entity.MerchantExpense) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total.Round(valueobject.Scale)
}

// MerchantBill is what a merchant owes for one day: resale amount, expenses and commission.
type MerchantBill struct {
	Amount     decimal.Decimal
	Expenses   decimal.Decimal
	Commission decimal.Decimal
	Total      decimal.Decimal
}

// NewMerchantBill combines a merchant's daily totals with that day's expenses.
func NewMerchantBill(totals MerchantTotals, expenses decimal.Decimal) MerchantBill {
	return MerchantBill{
		Amount:     totals.Amount,
		Expenses:   expenses,
		Commission: totals.Commission,
		Total:      totals.Amount.Add(expenses).Add(totals.Commission).Round(valueobject.Scale),
	}
}
