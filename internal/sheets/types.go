package sheets

import (
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// SheetInfo describes one sheet (tab) of the spreadsheet.
type SheetInfo struct {
	Index       int64  `json:"index"`
	Title       string `json:"title"`
	SheetID     int64  `json:"sheet_id"`
	RowCount    int64  `json:"row_count"`
	ColumnCount int64  `json:"column_count"`
}

// SpreadsheetInfo describes the spreadsheet and the sheets it contains.
type SpreadsheetInfo struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	URL    string      `json:"url,omitempty"`
	Sheets []SheetInfo `json:"sheets"`
}

// AppendResult reports where appended rows landed.
type AppendResult struct {
	UpdatedRange string `json:"updated_range,omitempty"`
	UpdatedRows  int64  `json:"updated_rows"`
	UpdatedCells int64  `json:"updated_cells"`
}

// ColumnResult reports where an added column landed.
type ColumnResult struct {
	Column       string `json:"column"`
	UpdatedRange string `json:"updated_range,omitempty"`
	UpdatedCells int64  `json:"updated_cells"`
}

// ExportResult reports the outcome of a workbook export.
type ExportResult struct {
	Path   string   `json:"path"`
	Sheets []string `json:"sheets"`
	Rows   int      `json:"rows"`
}

// toSheetInfo converts a Google API sheet to a SheetInfo.
func toSheetInfo(s *sheetsv4.Sheet) SheetInfo {
	var info SheetInfo
	if s == nil || s.Properties == nil {
		return info
	}

	p := s.Properties
	info.Index = p.Index
	info.Title = p.Title
	info.SheetID = p.SheetId
	if p.GridProperties != nil {
		info.RowCount = p.GridProperties.RowCount
		info.ColumnCount = p.GridProperties.ColumnCount
	}

	return info
}
