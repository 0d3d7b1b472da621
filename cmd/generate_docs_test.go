package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name string
		tool string
		want string
	}{
		{
			name: "list tool",
			tool: "list_sheets",
			want: "Read Tools",
		},
		{
			name: "read tool",
			tool: "read_sheet_data",
			want: "Read Tools",
		},
		{
			name: "create tool",
			tool: "create_sheet",
			want: "Write Tools",
		},
		{
			name: "append tool",
			tool: "append_data",
			want: "Write Tools",
		},
		{
			name: "delete tool",
			tool: "delete_row",
			want: "Delete Tools",
		},
		{
			name: "export tool",
			tool: "export_sheet",
			want: "Export Tools",
		},
		{
			name: "unknown tool",
			tool: "mystery_tool",
			want: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getCategoryFromToolName(tt.tool); got != tt.want {
				t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.tool, got, tt.want)
			}
		})
	}
}

// TestRunGenerateDocs generates the full tool reference and checks that every
// tool appears in it
func TestRunGenerateDocs(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "tools.md")

	if err := runGenerateDocs(outputFile); err != nil {
		t.Fatalf("runGenerateDocs() error = %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("failed to read generated docs: %v", err)
	}
	markdown := string(data)

	if !strings.HasPrefix(markdown, "# MCP Tools Reference") {
		t.Error("generated docs missing title")
	}

	tools := []string{
		"list_sheets", "read_sheet_data",
		"create_sheet", "rename_sheet", "append_data", "add_column",
		"delete_sheet", "delete_row", "delete_column",
		"export_sheet",
	}
	for _, tool := range tools {
		if !strings.Contains(markdown, "### "+tool) {
			t.Errorf("generated docs missing tool %q", tool)
		}
	}

	for _, section := range []string{"## Read Tools", "## Write Tools", "## Delete Tools", "## Export Tools", "## Read-Only Mode"} {
		if !strings.Contains(markdown, section) {
			t.Errorf("generated docs missing section %q", section)
		}
	}

	// Required arguments are labeled
	if !strings.Contains(markdown, "`sheet_name` (required)") {
		t.Error("generated docs missing required argument labels")
	}
}
