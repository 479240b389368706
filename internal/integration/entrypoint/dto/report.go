package dto

// ExportReportQuery holds the filters of a spreadsheet export.
type ExportReportQuery struct {
	DateRangeQuery
	VendorID   string `form:"vendor_id" binding:"omitempty,uuid"`
	VendorType string `form:"vendor_type" binding:"omitempty,vendorkind"`
}
