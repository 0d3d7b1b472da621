// Package mocks provides test doubles for the sheets tool handlers.
package mocks

import (
	"context"

	"github.com/teemow/sheets-mcp/internal/sheets"
)

// MockSheetsAPI is a test double for the sheets client used by tool handlers.
type MockSheetsAPI struct {
	// Responses to return
	ListSheetsResponse   []sheets.SheetInfo
	ReadRangeResponse    [][]interface{}
	CreateSheetResponse  *sheets.SheetInfo
	AppendRowsResponse   *sheets.AppendResult
	AddColumnResponse    *sheets.ColumnResult
	ExportSheetsResponse *sheets.ExportResult

	// Errors to return
	ListSheetsError    error
	ReadRangeError     error
	CreateSheetError   error
	RenameSheetError   error
	AppendRowsError    error
	AddColumnError     error
	DeleteSheetError   error
	DeleteRowsError    error
	DeleteColumnsError error
	ExportSheetsError  error

	// DeleteSheetErrors overrides DeleteSheetError per sheet name.
	DeleteSheetErrors map[string]error

	// Call tracking
	ListSheetsCalled    bool
	ReadRangeCalled     bool
	CreateSheetCalled   bool
	RenameSheetCalled   bool
	AppendRowsCalled    bool
	AddColumnCalled     bool
	DeleteSheetCalled   bool
	DeleteRowsCalled    bool
	DeleteColumnsCalled bool
	ExportSheetsCalled  bool

	// Call parameters tracking
	ReadRangeCalledWith struct {
		SheetName string
		Range     string
		TailLimit int
	}
	CreateSheetCalledWith struct {
		Title string
	}
	RenameSheetCalledWith struct {
		OldTitle string
		NewTitle string
	}
	AppendRowsCalledWith struct {
		SheetName string
		Rows      [][]interface{}
	}
	AddColumnCalledWith struct {
		SheetName string
		Header    string
		Values    []interface{}
	}
	DeleteSheetCalledWith struct {
		SheetNames []string
	}
	DeleteRowsCalledWith struct {
		SheetName string
		Start     int64
		End       int64
	}
	DeleteColumnsCalledWith struct {
		SheetName string
		Start     int64
		End       int64
	}
	ExportSheetsCalledWith struct {
		SheetNames []string
		Range      string
		Path       string
	}
}

// NewMockSheetsAPI creates a new mock sheets API
func NewMockSheetsAPI() *MockSheetsAPI {
	return &MockSheetsAPI{}
}

func (m *MockSheetsAPI) ListSheets(ctx context.Context) ([]sheets.SheetInfo, error) {
	m.ListSheetsCalled = true
	return m.ListSheetsResponse, m.ListSheetsError
}

func (m *MockSheetsAPI) ReadRange(ctx context.Context, sheetName, a1Range string, tailLimit int) ([][]interface{}, error) {
	m.ReadRangeCalled = true
	m.ReadRangeCalledWith.SheetName = sheetName
	m.ReadRangeCalledWith.Range = a1Range
	m.ReadRangeCalledWith.TailLimit = tailLimit
	return m.ReadRangeResponse, m.ReadRangeError
}

func (m *MockSheetsAPI) CreateSheet(ctx context.Context, title string) (*sheets.SheetInfo, error) {
	m.CreateSheetCalled = true
	m.CreateSheetCalledWith.Title = title
	return m.CreateSheetResponse, m.CreateSheetError
}

func (m *MockSheetsAPI) RenameSheet(ctx context.Context, oldTitle, newTitle string) error {
	m.RenameSheetCalled = true
	m.RenameSheetCalledWith.OldTitle = oldTitle
	m.RenameSheetCalledWith.NewTitle = newTitle
	return m.RenameSheetError
}

func (m *MockSheetsAPI) AppendRows(ctx context.Context, sheetName string, rows [][]interface{}) (*sheets.AppendResult, error) {
	m.AppendRowsCalled = true
	m.AppendRowsCalledWith.SheetName = sheetName
	m.AppendRowsCalledWith.Rows = rows
	return m.AppendRowsResponse, m.AppendRowsError
}

func (m *MockSheetsAPI) AddColumn(ctx context.Context, sheetName, header string, values []interface{}) (*sheets.ColumnResult, error) {
	m.AddColumnCalled = true
	m.AddColumnCalledWith.SheetName = sheetName
	m.AddColumnCalledWith.Header = header
	m.AddColumnCalledWith.Values = values
	return m.AddColumnResponse, m.AddColumnError
}

func (m *MockSheetsAPI) DeleteSheet(ctx context.Context, sheetName string) error {
	m.DeleteSheetCalled = true
	m.DeleteSheetCalledWith.SheetNames = append(m.DeleteSheetCalledWith.SheetNames, sheetName)
	if err, ok := m.DeleteSheetErrors[sheetName]; ok {
		return err
	}
	return m.DeleteSheetError
}

func (m *MockSheetsAPI) DeleteRows(ctx context.Context, sheetName string, start, end int64) error {
	m.DeleteRowsCalled = true
	m.DeleteRowsCalledWith.SheetName = sheetName
	m.DeleteRowsCalledWith.Start = start
	m.DeleteRowsCalledWith.End = end
	return m.DeleteRowsError
}

func (m *MockSheetsAPI) DeleteColumns(ctx context.Context, sheetName string, start, end int64) error {
	m.DeleteColumnsCalled = true
	m.DeleteColumnsCalledWith.SheetName = sheetName
	m.DeleteColumnsCalledWith.Start = start
	m.DeleteColumnsCalledWith.End = end
	return m.DeleteColumnsError
}

func (m *MockSheetsAPI) ExportSheets(ctx context.Context, sheetNames []string, a1Range, path string) (*sheets.ExportResult, error) {
	m.ExportSheetsCalled = true
	m.ExportSheetsCalledWith.SheetNames = sheetNames
	m.ExportSheetsCalledWith.Range = a1Range
	m.ExportSheetsCalledWith.Path = path
	return m.ExportSheetsResponse, m.ExportSheetsError
}
