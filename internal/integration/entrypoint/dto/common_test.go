package dto

import (
	"encoding/json"
	"errors"
	"testing"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		want        string
	}{
		{name: "number", body: `{"weight": 500.5}`, wantPresent: true, want: "500.5"},
		{name: "numeric string", body: `{"weight": "500.50"}`, wantPresent: true, want: "500.5"},
		{name: "empty string", body: `{"weight": ""}`, want: "0"},
		{name: "null", body: `{"weight": null}`, want: "0"},
		{name: "missing", body: `{}`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TransactionRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.Weight.Present() != tt.wantPresent {
				t.Errorf("Present() = %v, want %v", req.Weight.Present(), tt.wantPresent)
			}
			got, err := req.Weight.Decimal("weight")
			if err != nil {
				t.Fatalf("Decimal: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Decimal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQuantity_RejectsGarbage(t *testing.T) {
	for _, body := range []string{`{"rate": "abc"}`, `{"rate": true}`, `{"rate": [1]}`} {
		var req TransactionRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		_, err := req.QuantityFields()
		if !errors.Is(err, domainerror.ErrInvalidQuantity) {
			t.Errorf("%s: expected ErrInvalidQuantity, got %v", body, err)
		}
	}
}

func TestTransactionRequest_QuantityFields(t *testing.T) {
	body := `{"vendor_id": "7d7f0c7e-6f0a-4a43-9d55-2c1d1f6a7b10", "bags": "10", "weight": 500, "rate": "20", "expenses": 50}`
	var req TransactionRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	fields, err := req.QuantityFields()
	if err != nil {
		t.Fatalf("QuantityFields: %v", err)
	}
	if fields.Bags != 10 {
		t.Errorf("Bags = %d, want 10", fields.Bags)
	}
	if fields.DeductionPerBag != nil {
		t.Errorf("DeductionPerBag = %v, want nil so the default applies", fields.DeductionPerBag)
	}
	if fields.Expenses.String() != "50" {
		t.Errorf("Expenses = %s, want 50", fields.Expenses)
	}
}

func TestTransactionRequest_FractionalBags(t *testing.T) {
	var req TransactionRequest
	if err := json.Unmarshal([]byte(`{"bags": 2.5}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := req.QuantityFields(); !errors.Is(err, domainerror.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("")
	if err != nil || got != nil {
		t.Fatalf("empty date: got %v, %v", got, err)
	}

	got, err = ParseOptionalDate("2024-03-05")
	if err != nil {
		t.Fatalf("ParseOptionalDate: %v", err)
	}
	if FormatDate(*got) != "2024-03-05" {
		t.Errorf("FormatDate = %s", FormatDate(*got))
	}

	if _, err := ParseOptionalDate("05/03/2024"); !errors.Is(err, domainerror.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
