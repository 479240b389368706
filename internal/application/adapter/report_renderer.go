package adapter

import (
	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// FarmerReport is the data printed on a farmer transaction report.
type FarmerReport struct {
	Window valueobject.DateWindow
	Rows   []*entity.FarmerTransaction
	Totals ledger.FarmerTotals
}

// MerchantReport is the data printed on a merchant transaction report.
type MerchantReport struct {
	Window valueobject.DateWindow
	Rows   []*entity.MerchantTransaction
	Totals ledger.MerchantTotals
}

// ReportRenderer renders reports into a downloadable document.
type ReportRenderer interface {
	RenderFarmerReport(report FarmerReport) ([]byte, error)
	RenderMerchantReport(report MerchantReport) ([]byte, error)
	ContentType() string
}
