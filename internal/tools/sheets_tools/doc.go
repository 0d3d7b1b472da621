// Package sheets_tools provides MCP tools for Google Sheets operations.
//
// This package exposes the spreadsheet configured at startup through the
// Model Context Protocol (MCP), allowing AI agents to inspect and change
// its contents. It wraps the sheets client package and provides the
// following tools:
//
// Read tools (always registered):
//   - list_sheets: List all sheets (tabs) with their size and sheet ID
//   - read_sheet_data: Read a range as a markdown table
//   - export_sheet: Snapshot sheets into an .xlsx workbook on disk
//
// Write tools (registered only outside read-only mode):
//   - create_sheet: Create a new sheet (tab)
//   - rename_sheet: Rename an existing sheet
//   - append_data: Append rows after the existing content
//   - add_column: Add a column right of the current data
//   - delete_sheet: Delete one or more sheets
//   - delete_row, delete_column: Delete half-open index ranges
//
// Handlers validate and coerce every argument before any remote call and
// report failures labeled with an error kind (auth, not_found, conflict,
// range, validation, internal) so agents can react to the failure class.
//
// Example MCP tool call:
//
//	{
//	  "tool": "read_sheet_data",
//	  "arguments": {
//	    "sheet_name": "Sales",
//	    "tail_limit": 20
//	  }
//	}
package sheets_tools
