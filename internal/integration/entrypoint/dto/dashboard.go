package dto

import (
	"github.com/farmx/ledger-backend/internal/application/usecase/dashboard"
	"github.com/farmx/ledger-backend/internal/domain/ledger"
)

// TodayStatsResponse represents the dashboard of one business date.
type TodayStatsResponse struct {
	Date                 string                        `json:"date"`
	FarmerTransactions   []TransactionResponse         `json:"farmer_transactions"`
	FarmerTotals         FarmerTotalsResponse          `json:"farmer_totals"`
	MerchantTransactions []MerchantTransactionResponse `json:"merchant_transactions"`
	MerchantTotals       MerchantTotalsResponse        `json:"merchant_totals"`
	Stats                HeadlineStatsResponse         `json:"stats"`
	YearlyCommission     CommissionStatsResponse       `json:"yearly_commission"`
}

// HeadlineStatsResponse holds the day's headline figures.
type HeadlineStatsResponse struct {
	TotalBags      int64  `json:"total_bags"`
	FarmerAmount   string `json:"farmer_amount"`
	MerchantAmount string `json:"merchant_amount"`
}

// CommissionStatsResponse is the year-to-date commission summary.
type CommissionStatsResponse struct {
	Total        string                     `json:"total"`
	MerchantWise []MerchantCommissionSummary `json:"merchant_wise"`
}

// MerchantCommissionSummary is one merchant's share of the yearly commission.
type MerchantCommissionSummary struct {
	VendorID        string `json:"vendor_id"`
	VendorName      string `json:"vendor_name"`
	TotalCommission string `json:"total_commission"`
	TotalWeight     string `json:"total_weight"`
}

// ToTodayStatsResponse converts the dashboard output to its DTO.
func ToTodayStatsResponse(output *dashboard.GetTodayStatsOutput) TodayStatsResponse {
	return TodayStatsResponse{
		Date:                 FormatDate(output.Date),
		FarmerTransactions:   ToTransactionResponses(output.FarmerTransactions),
		FarmerTotals:         ToFarmerTotalsResponse(output.FarmerTotals),
		MerchantTransactions: ToMerchantTransactionResponses(output.MerchantTransactions),
		MerchantTotals:       ToMerchantTotalsResponse(output.MerchantTotals),
		Stats: HeadlineStatsResponse{
			TotalBags:      output.Stats.TotalBags,
			FarmerAmount:   money(output.Stats.FarmerAmount),
			MerchantAmount: money(output.Stats.MerchantAmount),
		},
		YearlyCommission: toCommissionStatsResponse(output.YearlyCommission),
	}
}

func toCommissionStatsResponse(stats ledger.CommissionStats) CommissionStatsResponse {
	response := CommissionStatsResponse{
		Total:        money(stats.Total),
		MerchantWise: make([]MerchantCommissionSummary, 0, len(stats.MerchantWise)),
	}
	for _, m := range stats.MerchantWise {
		response.MerchantWise = append(response.MerchantWise, MerchantCommissionSummary{
			VendorID:        m.VendorID.String(),
			VendorName:      m.VendorName,
			TotalCommission: money(m.TotalCommission),
			TotalWeight:     money(m.TotalWeight),
		})
	}
	return response
}
