// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Quantity is a numeric request field. It accepts a JSON number or a numeric
// string. Blank strings and null read as zero. Anything else is kept raw and
// rejected when the value is read.
type Quantity struct {
	raw string
}

// NewQuantity builds a Quantity from its raw text.
func NewQuantity(raw string) Quantity {
	return Quantity{raw: raw}
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*q = Quantity{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = NewQuantity(s)
	default:
		*q = NewQuantity(string(data))
	}
	return nil
}

// Present reports whether a non-blank value was sent.
func (q Quantity) Present() bool {
	return strings.TrimSpace(q.raw) != ""
}

// Decimal parses the value, treating absence as zero.
func (q Quantity) Decimal(field string) (decimal.Decimal, error) {
	return valueobject.ParseQuantity(field, q.raw)
}

// OptionalDecimal parses the value, returning nil when nothing was sent.
func (q Quantity) OptionalDecimal(field string) (*decimal.Decimal, error) {
	if !q.Present() {
		return nil, nil
	}
	d, err := q.Decimal(field)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Bags parses the value as a whole bag count.
func (q Quantity) Bags() (int64, error) {
	return valueobject.ParseBags(q.raw)
}

// WindowResponse describes the date range a listing covers.
type WindowResponse struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// ToWindowResponse renders a window as its first and last calendar dates.
// An open side is omitted.
func ToWindowResponse(w valueobject.DateWindow) WindowResponse {
	start, end := w.Bounds()
	return WindowResponse{
		StartDate: start,
		EndDate:   end,
	}
}

// DateRangeQuery holds the optional start_date and end_date query parameters.
type DateRangeQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,ledgerdate"`
	EndDate   string `form:"end_date" binding:"omitempty,ledgerdate"`
}

// Dates parses both bounds. Missing bounds come back nil.
func (q DateRangeQuery) Dates() (*time.Time, *time.Time, error) {
	start, err := ParseOptionalDate(q.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := ParseOptionalDate(q.EndDate)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// ParseOptionalDate parses a YYYY-MM-DD date, returning nil for an empty string.
func ParseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := valueobject.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseOptionalUUID parses an ID, returning nil for nil or empty input.
func ParseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(valueobject.DateLayout)
}

func formatUUID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func money(d decimal.Decimal) string {
	return valueobject.Format(d)
}
