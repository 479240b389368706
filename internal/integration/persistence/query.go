package persistence

import (
	"gorm.io/gorm"

	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// applyWindow restricts column to the date window. A nil window leaves the query
// unchanged and an open side of the window adds no condition.
func applyWindow(query *gorm.DB, column string, window *valueobject.DateWindow) *gorm.DB {
	if window == nil {
		return query
	}
	if window.HasStart() {
		query = query.Where(column+" >= ?", window.Start)
	}
	switch {
	case !window.HasEnd():
		return query
	case window.EndInclusive:
		return query.Where(column+" <= ?", window.End)
	default:
		return query.Where(column+" < ?", window.End)
	}
}
