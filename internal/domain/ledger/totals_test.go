package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func farmerRow(t *testing.T, day int, bags int64, weight, rate, expenses string) *entity.FarmerTransaction {
	t.Helper()
	row, err := entity.NewFarmerTransaction(
		uuid.New(),
		time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC),
		valueobject.QuantityInput{
			Bags:            bags,
			Weight:          dec(weight),
			DeductionPerBag: valueobject.DefaultDeductionPerBag,
			Rate:            dec(rate),
			Expenses:        dec(expenses),
		},
		"",
		nil,
	)
	if err != nil {
		t.Fatalf("failed to build farmer row: %v", err)
	}
	return row
}

func merchantRow(t *testing.T, day int, bags int64, weight, rate string) *entity.MerchantTransaction {
	t.Helper()
	row, err := entity.NewMerchantTransaction(
		uuid.New(),
		nil,
		"Ramesh",
		time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC),
		valueobject.QuantityInput{
			Bags:            bags,
			Weight:          dec(weight),
			DeductionPerBag: valueobject.DefaultDeductionPerBag,
			Rate:            dec(rate),
		},
		"",
	)
	if err != nil {
		t.Fatalf("failed to build merchant row: %v", err)
	}
	return row
}

func TestSumFarmerTransactions(t *testing.T) {
	rows := []*entity.FarmerTransaction{
		farmerRow(t, 1, 10, "500", "20", "50"),
		farmerRow(t, 1, 0, "100", "15", "0"),
	}

	got := SumFarmerTransactions(rows)

	if got.Bags != 10 {
		t.Errorf("bags = %d, want 10", got.Bags)
	}
	checks := map[string][2]string{
		"weight":       {valueobject.Format(got.Weight), "600.00"},
		"deduction":    {valueobject.Format(got.Deduction), "20.00"},
		"net_weight":   {valueobject.Format(got.NetWeight), "580.00"},
		"amount":       {valueobject.Format(got.Amount), "11100.00"},
		"expenses":     {valueobject.Format(got.Expenses), "50.00"},
		"final_amount": {valueobject.Format(got.FinalAmount), "11050.00"},
	}
	for field, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %s, want %s", field, c[0], c[1])
		}
	}
}

func TestSumFarmerTransactions_Empty(t *testing.T) {
	got := SumFarmerTransactions(nil)
	if got.Bags != 0 || !got.Amount.IsZero() || valueobject.Format(got.FinalAmount) != "0.00" {
		t.Errorf("empty totals not zero: %+v", got)
	}
}

func TestSumFarmerTransactions_Additivity(t *testing.T) {
	early := []*entity.FarmerTransaction{
		farmerRow(t, 1, 3, "120.55", "18.25", "10"),
		farmerRow(t, 2, 7, "333.33", "21.10", "0"),
		farmerRow(t, 2, 1, "1.00", "99.99", "5"),
	}
	late := []*entity.FarmerTransaction{
		farmerRow(t, 5, 12, "640.10", "19.75", "25.50"),
		farmerRow(t, 6, 0, "45.45", "22.22", "0"),
	}
	all := append(append([]*entity.FarmerTransaction{}, early...), late...)

	a := SumFarmerTransactions(early)
	b := SumFarmerTransactions(late)
	whole := SumFarmerTransactions(all)

	if a.Bags+b.Bags != whole.Bags {
		t.Errorf("bags not additive: %d + %d != %d", a.Bags, b.Bags, whole.Bags)
	}
	pairs := map[string][3]decimal.Decimal{
		"weight":     {a.Weight, b.Weight, whole.Weight},
		"deduction":  {a.Deduction, b.Deduction, whole.Deduction},
		"net_weight": {a.NetWeight, b.NetWeight, whole.NetWeight},
		"amount":     {a.Amount, b.Amount, whole.Amount},
	}
	for field, p := range pairs {
		if !p[0].Add(p[1]).Equal(p[2]) {
			t.Errorf("%s not additive: %s + %s != %s", field, p[0], p[1], p[2])
		}
	}
}

func TestSumMerchantTransactions(t *testing.T) {
	rule, _ := valueobject.NewCommissionRule(valueobject.DefaultCommissionRatePerKg)
	rows := []*entity.MerchantTransaction{
		merchantRow(t, 3, 0, "480", "25"),
		merchantRow(t, 3, 0, "120", "25"),
	}

	got := SumMerchantTransactions(rows, rule)

	if valueobject.Format(got.Weight) != "600.00" {
		t.Errorf("weight = %s, want 600.00", valueobject.Format(got.Weight))
	}
	if valueobject.Format(got.Commission) != "480.00" {
		t.Errorf("commission = %s, want 480.00", valueobject.Format(got.Commission))
	}
	if valueobject.Format(got.FinalAmount) != "0.00" {
		t.Errorf("final_amount = %s, want 0.00", valueobject.Format(got.FinalAmount))
	}
	if !got.FinalTotal.Equal(got.FinalAmount.Add(got.Commission)) {
		t.Errorf("final_total = %s, want final_amount + commission", got.FinalTotal)
	}
	if valueobject.Format(got.Amount) != "15000.00" {
		t.Errorf("amount = %s, want 15000.00", valueobject.Format(got.Amount))
	}
}

func TestSumPendingAmount(t *testing.T) {
	paid := farmerRow(t, 1, 0, "100", "10", "0")
	paid.PaymentStatus = entity.PaymentStatusPaid
	rows := []*entity.FarmerTransaction{
		farmerRow(t, 1, 0, "100", "10", "100"),
		farmerRow(t, 2, 0, "50", "10", "0"),
		paid,
	}

	if got := valueobject.Format(SumPendingAmount(rows)); got != "1400.00" {
		t.Errorf("pending = %s, want 1400.00", got)
	}
}

func TestNewMerchantBill(t *testing.T) {
	rule, _ := valueobject.NewCommissionRule(valueobject.DefaultCommissionRatePerKg)
	totals := SumMerchantTransactions([]*entity.MerchantTransaction{merchantRow(t, 3, 0, "100", "10")}, rule)

	bill := NewMerchantBill(totals, dec("35.50"))

	if valueobject.Format(bill.Total) != "1115.50" {
		t.Errorf("bill total = %s, want 1115.50", valueobject.Format(bill.Total))
	}
}
