package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/teemow/sheets-mcp/internal/sheets"
	"github.com/teemow/sheets-mcp/internal/tools/batch"
	"github.com/teemow/sheets-mcp/internal/tools/sheets_tools/mocks"
)

// parseBatchResult decodes the JSON payload delete_sheet returns.
func parseBatchResult(t *testing.T, text string) batch.BatchResult {
	t.Helper()

	var br batch.BatchResult
	if err := json.Unmarshal([]byte(text), &br); err != nil {
		t.Fatalf("failed to parse batch result %q: %v", text, err)
	}
	return br
}

func TestHandleDeleteSheet_SingleSheet(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	args := map[string]interface{}{
		"sheet_name": "Old Data",
	}

	result, err := handleDeleteSheet(context.Background(), mock, newRequest("delete_sheet", args))
	if err != nil {
		t.Fatalf("handleDeleteSheet() unexpected error = %v", err)
	}

	br := parseBatchResult(t, resultText(t, result))
	if br.Total != 1 || br.Successful != 1 || br.Failed != 0 {
		t.Errorf("batch result = %d total, %d successful, %d failed; want 1/1/0",
			br.Total, br.Successful, br.Failed)
	}
	if br.Results[0].ID != "Old Data" {
		t.Errorf("result ID = %q, want Old Data", br.Results[0].ID)
	}
	if want := `Sheet "Old Data" deleted`; br.Results[0].Result != want {
		t.Errorf("result message = %q, want %q", br.Results[0].Result, want)
	}
}

func TestHandleDeleteSheet_ArrayOfSheets(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	args := map[string]interface{}{
		"sheet_name": []interface{}{"Sales", "Expenses"},
	}

	result, err := handleDeleteSheet(context.Background(), mock, newRequest("delete_sheet", args))
	if err != nil {
		t.Fatalf("handleDeleteSheet() unexpected error = %v", err)
	}

	br := parseBatchResult(t, resultText(t, result))
	if br.Total != 2 || br.Successful != 2 {
		t.Errorf("batch result = %d total, %d successful; want 2/2", br.Total, br.Successful)
	}

	got := mock.DeleteSheetCalledWith.SheetNames
	if len(got) != 2 || got[0] != "Sales" || got[1] != "Expenses" {
		t.Errorf("DeleteSheet called with %v, want [Sales Expenses]", got)
	}
}

func TestHandleDeleteSheet_JSONStringArray(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	args := map[string]interface{}{
		"sheet_name": `["Sales", "Expenses"]`,
	}

	result, err := handleDeleteSheet(context.Background(), mock, newRequest("delete_sheet", args))
	if err != nil {
		t.Fatalf("handleDeleteSheet() unexpected error = %v", err)
	}

	br := parseBatchResult(t, resultText(t, result))
	if br.Total != 2 {
		t.Errorf("batch total = %d, want 2", br.Total)
	}
}

func TestHandleDeleteSheet_PartialFailure(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.DeleteSheetErrors = map[string]error{
		"Ghost": fmt.Errorf("%w: sheet %q does not exist", sheets.ErrNotFound, "Ghost"),
	}

	args := map[string]interface{}{
		"sheet_name": []interface{}{"Sales", "Ghost"},
	}

	result, err := handleDeleteSheet(context.Background(), mock, newRequest("delete_sheet", args))
	if err != nil {
		t.Fatalf("handleDeleteSheet() unexpected error = %v", err)
	}

	// Per-item outcomes are reported in the payload, not as a tool error
	if result.IsError {
		t.Error("batch with partial failure should not be an error result")
	}

	br := parseBatchResult(t, resultText(t, result))
	if br.Successful != 1 || br.Failed != 1 {
		t.Errorf("batch result = %d successful, %d failed; want 1/1", br.Successful, br.Failed)
	}

	if br.Results[0].Status != "success" || br.Results[0].Kind != "" {
		t.Errorf("first result = %+v, want success with no kind", br.Results[0])
	}
	if br.Results[1].Status != "error" || br.Results[1].Kind != sheets.KindNotFound {
		t.Errorf("second result = %+v, want not_found error", br.Results[1])
	}

	// Both deletes were attempted despite the failure
	if got := len(mock.DeleteSheetCalledWith.SheetNames); got != 2 {
		t.Errorf("DeleteSheet called %d times, want 2", got)
	}
}

func TestHandleDeleteSheet_Validation(t *testing.T) {
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
			name: "empty array",
			args: map[string]interface{}{
				"sheet_name": []interface{}{},
			},
		},
		{
			name: "non-string element",
			args: map[string]interface{}{
				"sheet_name": []interface{}{"Sales", 42},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mocks.NewMockSheetsAPI()

			result, err := handleDeleteSheet(context.Background(), mock, newRequest("delete_sheet", tt.args))
			if err != nil {
				t.Fatalf("handleDeleteSheet() unexpected error = %v", err)
			}

			if !result.IsError {
				t.Error("expected error result")
			}
			if text := resultText(t, result); !strings.HasPrefix(text, "validation:") {
				t.Errorf("handleDeleteSheet() error = %q, want validation prefix", text)
			}
			if mock.DeleteSheetCalled {
				t.Error("DeleteSheet should not be called on invalid input")
			}
		})
	}
}

func TestHandleDeleteRow(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	args := map[string]interface{}{
		"sheet_name": "Sales",
		"start":      2.0,
		"end":        5.0,
	}

	result, err := handleDeleteRow(context.Background(), mock, newRequest("delete_row", args))
	if err != nil {
		t.Fatalf("handleDeleteRow() unexpected error = %v", err)
	}

	want := `Deleted 3 row(s) from "Sales"`
	if got := resultText(t, result); got != want {
		t.Errorf("handleDeleteRow() = %q, want %q", got, want)
	}

	cw := mock.DeleteRowsCalledWith
	if cw.SheetName != "Sales" || cw.Start != 2 || cw.End != 5 {
		t.Errorf("DeleteRows called with (%q, %d, %d), want (Sales, 2, 5)", cw.SheetName, cw.Start, cw.End)
	}
}

func TestHandleDeleteRow_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing sheet_name",
			args: map[string]interface{}{
				"start": 0.0,
				"end":   1.0,
			},
		},
		{
			name: "missing start",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"end":        1.0,
			},
		},
		{
			name: "missing end",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"start":      0.0,
			},
		},
		{
			name: "fractional start",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"start":      1.5,
				"end":        3.0,
			},
		},
		{
			name: "non-numeric end",
			args: map[string]interface{}{
				"sheet_name": "Sales",
				"start":      0.0,
				"end":        "five",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mocks.NewMockSheetsAPI()

			result, err := handleDeleteRow(context.Background(), mock, newRequest("delete_row", tt.args))
			if err != nil {
				t.Fatalf("handleDeleteRow() unexpected error = %v", err)
			}

			if !result.IsError {
				t.Error("expected error result")
			}
			if text := resultText(t, result); !strings.HasPrefix(text, "validation:") {
				t.Errorf("handleDeleteRow() error = %q, want validation prefix", text)
			}
			if mock.DeleteRowsCalled {
				t.Error("DeleteRows should not be called on invalid input")
			}
		})
	}
}

func TestHandleDeleteRow_InvalidRange(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.DeleteRowsError = fmt.Errorf("%w: start must be less than end", sheets.ErrRange)

	args := map[string]interface{}{
		"sheet_name": "Sales",
		"start":      5.0,
		"end":        2.0,
	}

	result, err := handleDeleteRow(context.Background(), mock, newRequest("delete_row", args))
	if err != nil {
		t.Fatalf("handleDeleteRow() unexpected error = %v", err)
	}

	if !result.IsError {
		t.Error("expected error result")
	}
	if text := resultText(t, result); !strings.HasPrefix(text, "range:") {
		t.Errorf("handleDeleteRow() error = %q, want range prefix", text)
	}
}

func TestHandleDeleteColumn(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()

	args := map[string]interface{}{
		"sheet_name": "Sales",
		"start":      3.0,
		"end":        4.0,
	}

	result, err := handleDeleteColumn(context.Background(), mock, newRequest("delete_column", args))
	if err != nil {
		t.Fatalf("handleDeleteColumn() unexpected error = %v", err)
	}

	want := `Deleted 1 column(s) from "Sales"`
	if got := resultText(t, result); got != want {
		t.Errorf("handleDeleteColumn() = %q, want %q", got, want)
	}

	cw := mock.DeleteColumnsCalledWith
	if cw.SheetName != "Sales" || cw.Start != 3 || cw.End != 4 {
		t.Errorf("DeleteColumns called with (%q, %d, %d), want (Sales, 3, 4)", cw.SheetName, cw.Start, cw.End)
	}
}

func TestHandleDeleteColumn_OutOfBounds(t *testing.T) {
	mock := mocks.NewMockSheetsAPI()
	mock.DeleteColumnsError = fmt.Errorf("%w: sheet has 4 columns", sheets.ErrRange)

	args := map[string]interface{}{
		"sheet_name": "Sales",
		"start":      10.0,
		"end":        12.0,
	}

	result, err := handleDeleteColumn(context.Background(), mock, newRequest("delete_column", args))
	if err != nil {
		t.Fatalf("handleDeleteColumn() unexpected error = %v", err)
	}

	if !result.IsError {
		t.Error("expected error result")
	}
	if text := resultText(t, result); !strings.HasPrefix(text, "range:") {
		t.Errorf("handleDeleteColumn() error = %q, want range prefix", text)
	}
}
