package instrumentation

import (
	"strings"
	"testing"
)

func TestSanitizeSheetLabel(t *testing.T) {
	tests := []struct {
		name     string
		sheet    string
		expected string
	}{
		{"simple", "Sales", "Sales"},
		{"with spaces", "Q3 Report", "Q3 Report"},
		{"empty", "", "unknown"},
		{"exactly max", strings.Repeat("a", 64), strings.Repeat("a", 64)},
		{"over max", strings.Repeat("b", 100), strings.Repeat("b", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeSheetLabel(tt.sheet)
			if result != tt.expected {
				t.Errorf("SanitizeSheetLabel(%q) = %q, want %q", tt.sheet, result, tt.expected)
			}
		})
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationList:   "list",
		OperationGet:    "get",
		OperationRead:   "read",
		OperationCreate: "create",
		OperationUpdate: "update",
		OperationAppend: "append",
		OperationDelete: "delete",
		OperationExport: "export",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
