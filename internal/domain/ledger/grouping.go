package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// MerchantCommissionSummary is one merchant's share of the commission earned.
type MerchantCommissionSummary struct {
	VendorID        uuid.UUID
	VendorName      string
	TotalCommission decimal.Decimal
	TotalWeight     decimal.Decimal
}

// CommissionStats summarises persisted commissions over a period.
type CommissionStats struct {
	Total        decimal.Decimal
	MerchantWise []MerchantCommissionSummary
}

// GroupCommissionsByMerchant sums commission amount and weight per merchant,
// ordered by amount descending. Equal amounts fall back to name order.
func GroupCommissionsByMerchant(rows []*entity.MerchantCommission) CommissionStats {
	index := make(map[uuid.UUID]int)
	groups := make([]MerchantCommissionSummary, 0)
	total := decimal.Zero

	for _, row := range rows {
		total = total.Add(row.Amount)

		i, ok := index[row.VendorID]
		if !ok {
			i = len(groups)
			index[row.VendorID] = i
			groups = append(groups, MerchantCommissionSummary{
				VendorID:   row.VendorID,
				VendorName: row.VendorName,
			})
		}
		groups[i].TotalCommission = groups[i].TotalCommission.Add(row.Amount)
		groups[i].TotalWeight = groups[i].TotalWeight.Add(row.Weight)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if cmp := groups[a].TotalCommission.Cmp(groups[b].TotalCommission); cmp != 0 {
			return cmp > 0
		}
		return groups[a].VendorName < groups[b].VendorName
	})

	for i := range groups {
		groups[i].TotalCommission = groups[i].TotalCommission.Round(valueobject.Scale)
		groups[i].TotalWeight = groups[i].TotalWeight.Round(valueobject.Scale)
	}

	return CommissionStats{
		Total:        total.Round(valueobject.Scale),
		MerchantWise: groups,
	}
}
