package sheets_tools

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/teemow/sheets-mcp/internal/sheets"
	"github.com/teemow/sheets-mcp/internal/tools/sheets_tools/mocks"
)

func TestHandleListSheets_Empty(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	result, err := handleListSheets(context.Background(), mock, newRequest("list_sheets", nil))
	if err != nil {
		t.Fatalf("handleListSheets() unexpected error = %v", err)
	}

	if got := resultText(t, result); got != "No sheets found in this spreadsheet." {
		t.Errorf("handleListSheets() = %q, want empty-spreadsheet message", got)
	}
	if !mock.ListSheetsCalled {
		t.Error("expected ListSheets to be called")
	}
}

func TestHandleListSheets_RendersTable(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.ListSheetsResponse = []sheets.SheetInfo{
		{Index: 0, Title: "Sales", SheetID: 0, RowCount: 1000, ColumnCount: 26},
		{Index: 1, Title: "Expenses", SheetID: 419362212, RowCount: 50, ColumnCount: 4},
	}

	result, err := handleListSheets(context.Background(), mock, newRequest("list_sheets", nil))
	if err != nil {
		t.Fatalf("handleListSheets() unexpected error = %v", err)
	}

	text := resultText(t, result)
	for _, want := range []string{"Title", "Sheet ID", "Sales", "Expenses", "419362212"} {
		if !strings.Contains(text, want) {
			t.Errorf("handleListSheets() output missing %q:\n%s", want, text)
		}
	}
}

func TestHandleListSheets_Error(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.ListSheetsError = fmt.Errorf("%w: spreadsheet does not exist", sheets.ErrNotFound)

	result, err := handleListSheets(context.Background(), mock, newRequest("list_sheets", nil))
	if err != nil {
		t.Fatalf("handleListSheets() unexpected error = %v", err)
	}

	if !result.IsError {
		t.Error("expected error result")
	}
	if text := resultText(t, result); !strings.HasPrefix(text, "not_found:") {
		t.Errorf("handleListSheets() error = %q, want not_found prefix", text)
	}
}

func TestHandleReadSheetData_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing sheet_name",
			args: map[string]interface{}{},
		},
		{
			name: "empty sheet_name",
			args: map[string]interface{}{
				"sheet_name": "",
			},
		},
		{
			name: "non-string sheet_name",
			args: map[string]interface{}{
				"sheet_name": 123,
			},
		},
		{
			name: "non-numeric tail_limit",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"tail_limit": "ten",
			},
		},
		{
			name: "fractional tail_limit",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"tail_limit": 2.5,
			},
		},
		{
			name: "negative tail_limit",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"tail_limit": -3.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mocks.NewMockSheetsAPI()

			result, err := handleReadSheetData(context.Background(), mock, newRequest("read_sheet_data", tt.args))
			if err != nil {
				t.Fatalf("handleReadSheetData() unexpected error = %v", err)
			}

			if !result.IsError {
				t.Error("expected error result")
			}
			if text := resultText(t, result); !strings.HasPrefix(text, "validation:") {
				t.Errorf("handleReadSheetData() error = %q, want validation prefix", text)
			}
			if mock.ReadRangeCalled {
				t.Error("ReadRange should not be called on invalid input")
			}
		})
	}
}

func TestHandleReadSheetData_PassesArguments(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.ReadRangeResponse = [][]interface{}{
		{"Date", "Amount"},
		{"2024-01-02", "200"},
	}

	args := map[string]interface{}{
		"sheet_name": "Sales",
		"range":      "A1:B10",
		"tail_limit": 5.0,
	}

	result, err := handleReadSheetData(context.Background(), mock, newRequest("read_sheet_data", args))
	if err != nil {
		t.Fatalf("handleReadSheetData() unexpected error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleReadSheetData() returned error result: %s", resultText(t, result))
	}

	if got := mock.ReadRangeCalledWith.SheetName; got != "Sales" {
		t.Errorf("ReadRange sheet = %q, want Sales", got)
	}
	if got := mock.ReadRangeCalledWith.Range; got != "A1:B10" {
		t.Errorf("ReadRange range = %q, want A1:B10", got)
	}
	if got := mock.ReadRangeCalledWith.TailLimit; got != 5 {
		t.Errorf("ReadRange tail limit = %d, want 5", got)
	}
}

func TestHandleReadSheetData_DefaultsOptionalArguments(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.ReadRangeResponse = [][]interface{}{{"Header"}}

	args := map[string]interface{}{
		"sheet_name": "Sales",
	}

	_, err := handleReadSheetData(context.Background(), mock, newRequest("read_sheet_data", args))
	if err != nil {
		t.Fatalf("handleReadSheetData() unexpected error = %v", err)
	}

	if got := mock.ReadRangeCalledWith.Range; got != "" {
		t.Errorf("ReadRange range = %q, want empty", got)
	}
	if got := mock.ReadRangeCalledWith.TailLimit; got != 0 {
		t.Errorf("ReadRange tail limit = %d, want 0", got)
	}
}

func TestHandleReadSheetData_NoData(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	args := map[string]interface{}{
		"sheet_name": "Empty",
	}

	result, err := handleReadSheetData(context.Background(), mock, newRequest("read_sheet_data", args))
	if err != nil {
		t.Fatalf("handleReadSheetData() unexpected error = %v", err)
	}

	if got := resultText(t, result); got != "No data found." {
		t.Errorf("handleReadSheetData() = %q, want no-data message", got)
	}
}

func TestHandleReadSheetData_RendersTable(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.ReadRangeResponse = [][]interface{}{
		{"Date", "Amount"},
		{"2024-01-01", "100"},
		{"2024-01-02", float64(200)},
	}

	args := map[string]interface{}{
		"sheet_name": "Sales",
	}

	result, err := handleReadSheetData(context.Background(), mock, newRequest("read_sheet_data", args))
	if err != nil {
		t.Fatalf("handleReadSheetData() unexpected error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleReadSheetData() returned error result: %s", resultText(t, result))
	}

	want := strings.Join([]string{
		"| Date       | Amount |",
		"| ---------- | ------ |",
		"| 2024-01-01 | 100    |",
		"| 2024-01-02 | 200    |",
	}, "\n")
	if got := resultText(t, result); got != want {
		t.Errorf("handleReadSheetData() output =\n%s\nwant:\n%s", got, want)
	}
}

func TestHandleReadSheetData_SheetNotFound(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.ReadRangeError = fmt.Errorf("%w: sheet %q does not exist", sheets.ErrNotFound, "Ghost")

	args := map[string]interface{}{
		"sheet_name": "Ghost",
	}

	result, err := handleReadSheetData(context.Background(), mock, newRequest("read_sheet_data", args))
	if err != nil {
		t.Fatalf("handleReadSheetData() unexpected error = %v", err)
	}

	if !result.IsError {
		t.Error("expected error result")
	}
	if text := resultText(t, result); !strings.HasPrefix(text, "not_found:") {
		t.Errorf("handleReadSheetData() error = %q, want not_found prefix", text)
	}
}
