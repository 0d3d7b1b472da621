package instrumentation

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with sheet names.

// maxSheetLabelLen caps sheet-name label values. Sheet titles are user-controlled
// and can be up to 100 characters in Google Sheets.
const maxSheetLabelLen = 64

// SanitizeSheetLabel truncates a sheet name to a bounded length for use as a
// metric label value.
//
// Example:
//
//	SanitizeSheetLabel("Sales")          // "Sales"
//	SanitizeSheetLabel(veryLongTitle)    // first 64 characters
//	SanitizeSheetLabel("")               // "unknown"
func SanitizeSheetLabel(sheet string) string {
	if sheet == "" {
		return "unknown"
	}

	if len(sheet) > maxSheetLabelLen {
		return sheet[:maxSheetLabelLen]
	}

	return sheet
}

// Common operation types for Google API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationRead   = "read"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationAppend = "append"
	OperationDelete = "delete"
	OperationExport = "export"
)
