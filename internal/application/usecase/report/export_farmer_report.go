// Package report contains spreadsheet export use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// ExportInput carries the same filters as the list endpoints.
type ExportInput struct {
	VendorID   *uuid.UUID
	VendorKind string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExportOutput is a rendered document ready for download.
type ExportOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportFarmerReportUseCase renders farmer transactions into a spreadsheet.
type ExportFarmerReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	renderer        adapter.ReportRenderer
	clock           adapter.Clock
	location        *time.Location
}

// NewExportFarmerReportUseCase creates a new ExportFarmerReportUseCase instance.
func NewExportFarmerReportUseCase(
	transactionRepo adapter.TransactionRepository,
	renderer adapter.ReportRenderer,
	clock adapter.Clock,
	location *time.Location,
) *ExportFarmerReportUseCase {
	return &ExportFarmerReportUseCase{
		transactionRepo: transactionRepo,
		renderer:        renderer,
		clock:           clock,
		location:        location,
	}
}

// Execute performs the export.
func (uc *ExportFarmerReportUseCase) Execute(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	window, err := valueobject.ResolveWindow(input.StartDate, input.EndDate, uc.clock(), uc.location)
	if err != nil {
		return nil, err
	}

	filter := adapter.TransactionFilter{VendorID: input.VendorID, Window: &window}
	if input.VendorKind != "" {
		kind, err := entity.ParseVendorKind(input.VendorKind)
		if err != nil {
			return nil, err
		}
		filter.VendorKind = &kind
	}

	rows, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	content, err := uc.renderer.RenderFarmerReport(adapter.FarmerReport{
		Window: window,
		Rows:   rows,
		Totals: ledger.SumFarmerTransactions(rows),
	})
	if err != nil {
		return nil, renderError(err)
	}

	slog.Debug("Farmer report rendered", "rows", len(rows), "bytes", len(content))

	return &ExportOutput{
		Filename:    filename("farmer-transactions", window),
		ContentType: uc.renderer.ContentType(),
		Content:     content,
	}, nil
}

func filename(prefix string, window valueobject.DateWindow) string {
	start, end := window.Bounds()
	switch {
	case end == "":
		return fmt.Sprintf("%s_from_%s.xlsx", prefix, start)
	case start == "":
		return fmt.Sprintf("%s_until_%s.xlsx", prefix, end)
	case start == end:
		return fmt.Sprintf("%s_%s.xlsx", prefix, start)
	}
	return fmt.Sprintf("%s_%s_%s.xlsx", prefix, start, end)
}

func renderError(err error) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeReportRenderError,
		"failed to render report",
		fmt.Errorf("%w: %w", domainerror.ErrReportRender, err),
	)
}
