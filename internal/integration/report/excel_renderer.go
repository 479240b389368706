// Package report renders ledger reports as xlsx workbooks.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

const (
	farmerSheet   = "Farmer Transactions"
	merchantSheet = "Merchant Transactions"

	titleRow  = 1
	headerRow = 3
	firstRow  = 4

	// built-in "0.00" number format
	twoDecimalFormat = 2
)

var farmerHeaders = []any{
	"Date", "Farmer", "Bags", "Weight", "Deduction/Bag", "Deduction",
	"Net Weight", "Rate", "Amount", "Expenses", "Final Amount", "Status", "Merchant", "Remarks",
}

var merchantHeaders = []any{
	"Date", "Merchant", "Farmer", "Bags", "Weight", "Deduction/Bag", "Deduction",
	"Net Weight", "Rate", "Amount", "Remarks",
}

type excelRenderer struct{}

// NewExcelRenderer creates a ReportRenderer producing xlsx workbooks.
func NewExcelRenderer() adapter.ReportRenderer {
	return &excelRenderer{}
}

func (r *excelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *excelRenderer) RenderFarmerReport(report adapter.FarmerReport) ([]byte, error) {
	sheet, err := newSheet(farmerSheet, title("Farmer transactions", report.Window), farmerHeaders)
	if err != nil {
		return nil, err
	}
	defer sheet.close()

	row := firstRow
	for _, t := range report.Rows {
		merchant := ""
		if t.IsResold() {
			merchant = t.MerchantName
		}
		if err := sheet.writeRow(row, []any{
			t.Date.Format(valueobject.DateLayout), t.VendorName, t.Bags,
			number(t.Weight), number(t.DeductionPerBag), number(t.Deduction), number(t.NetWeight),
			number(t.Rate), number(t.Amount), number(t.Expenses), number(t.FinalAmount),
			string(t.PaymentStatus), merchant, t.Remarks,
		}); err != nil {
			return nil, err
		}
		row++
	}

	totals := report.Totals
	if err := sheet.writeTotalRow(row, []any{
		"Total", "", totals.Bags,
		number(totals.Weight), "", number(totals.Deduction), number(totals.NetWeight),
		"", number(totals.Amount), number(totals.Expenses), number(totals.FinalAmount),
	}); err != nil {
		return nil, err
	}

	return sheet.bytes()
}

func (r *excelRenderer) RenderMerchantReport(report adapter.MerchantReport) ([]byte, error) {
	sheet, err := newSheet(merchantSheet, title("Merchant transactions", report.Window), merchantHeaders)
	if err != nil {
		return nil, err
	}
	defer sheet.close()

	row := firstRow
	for _, t := range report.Rows {
		if err := sheet.writeRow(row, []any{
			t.Date.Format(valueobject.DateLayout), t.VendorName, t.FarmerName, t.Bags,
			number(t.Weight), number(t.DeductionPerBag), number(t.Deduction), number(t.NetWeight),
			number(t.Rate), number(t.Amount), t.Remarks,
		}); err != nil {
			return nil, err
		}
		row++
	}

	totals := report.Totals
	summary := [][]any{
		{"Total", "", "", totals.Bags, number(totals.Weight), "", number(totals.Deduction), number(totals.NetWeight), "", number(totals.Amount)},
		{"Commission", "", "", "", "", "", "", "", "", number(totals.Commission)},
		{"Final Total", "", "", "", "", "", "", "", "", number(totals.FinalTotal)},
	}
	for _, values := range summary {
		if err := sheet.writeTotalRow(row, values); err != nil {
			return nil, err
		}
		row++
	}

	return sheet.bytes()
}

func title(prefix string, window valueobject.DateWindow) string {
	start, end := window.Bounds()
	switch {
	case end == "":
		return fmt.Sprintf("%s from %s", prefix, start)
	case start == "":
		return fmt.Sprintf("%s until %s", prefix, end)
	case start == end:
		return fmt.Sprintf("%s %s", prefix, start)
	}
	return fmt.Sprintf("%s %s to %s", prefix, start, end)
}

func number(d decimal.Decimal) float64 {
	return d.Round(valueobject.Scale).InexactFloat64()
}

// workbook is a single-sheet xlsx file under construction.
type workbook struct {
	file        *excelize.File
	sheet       string
	columns     int
	numberStyle int
	totalStyle  int
}

func newSheet(name, heading string, headers []any) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	w := &workbook{file: f, sheet: name, columns: len(headers)}
	if err := w.init(heading, headers); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func (w *workbook) init(heading string, headers []any) error {
	bold, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if w.numberStyle, err = w.file.NewStyle(&excelize.Style{NumFmt: twoDecimalFormat}); err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if w.totalStyle, err = w.file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: twoDecimalFormat,
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := w.file.SetCellValue(w.sheet, "A1", heading); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if err := w.file.SetCellStyle(w.sheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("failed to style title: %w", err)
	}

	if err := w.file.SetSheetRow(w.sheet, cell(1, headerRow), &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.file.SetCellStyle(w.sheet, cell(1, headerRow), cell(w.columns, headerRow), bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	first, _ := excelize.ColumnNumberToName(1)
	last, _ := excelize.ColumnNumberToName(w.columns)
	if err := w.file.SetColWidth(w.sheet, first, last, 14); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	return nil
}

func (w *workbook) writeRow(row int, values []any) error {
	if err := w.file.SetSheetRow(w.sheet, cell(1, row), &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return w.file.SetCellStyle(w.sheet, cell(1, row), cell(w.columns, row), w.numberStyle)
}

func (w *workbook) writeTotalRow(row int, values []any) error {
	if err := w.file.SetSheetRow(w.sheet, cell(1, row), &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return w.file.SetCellStyle(w.sheet, cell(1, row), cell(w.columns, row), w.totalStyle)
}

func (w *workbook) bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *workbook) close() {
	_ = w.file.Close()
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
