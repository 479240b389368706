package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// ExportMerchantReportUseCase renders merchant transactions into a spreadsheet.
type ExportMerchantReportUseCase struct {
	merchantTxRepo adapter.MerchantTransactionRepository
	renderer       adapter.ReportRenderer
	rule           valueobject.CommissionRule
	clock          adapter.Clock
	location       *time.Location
}

// NewExportMerchantReportUseCase creates a new ExportMerchantReportUseCase instance.
func NewExportMerchantReportUseCase(
	merchantTxRepo adapter.MerchantTransactionRepository,
	renderer adapter.ReportRenderer,
	rule valueobject.CommissionRule,
	clock adapter.Clock,
	location *time.Location,
) *ExportMerchantReportUseCase {
	return &ExportMerchantReportUseCase{
		merchantTxRepo: merchantTxRepo,
		renderer:       renderer,
		rule:           rule,
		clock:          clock,
		location:       location,
	}
}

// Execute performs the export. VendorKind is ignored.
func (uc *ExportMerchantReportUseCase) Execute(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	window, err := valueobject.ResolveWindow(input.StartDate, input.EndDate, uc.clock(), uc.location)
	if err != nil {
		return nil, err
	}

	rows, err := uc.merchantTxRepo.FindByFilter(ctx, adapter.MerchantTransactionFilter{
		VendorID: input.VendorID,
		Window:   &window,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant transactions: %w", err)
	}

	content, err := uc.renderer.RenderMerchantReport(adapter.MerchantReport{
		Window: window,
		Rows:   rows,
		Totals: ledger.SumMerchantTransactions(rows, uc.rule),
	})
	if err != nil {
		return nil, renderError(err)
	}

	slog.Debug("Merchant report rendered", "rows", len(rows), "bytes", len(content))

	return &ExportOutput{
		Filename:    filename("merchant-transactions", window),
		ContentType: uc.renderer.ContentType(),
		Content:     content,
	}, nil
}
