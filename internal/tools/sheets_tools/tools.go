package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/sheets"
)

// SheetsAPI is the part of the Sheets client the tool handlers use.
type SheetsAPI interface {
	ListSheets(ctx context.Context) ([]sheets.SheetInfo, error)
	ReadRange(ctx context.Context, sheetName, a1Range string, tailLimit int) ([][]interface{}, error)
	CreateSheet(ctx context.Context, title string) (*sheets.SheetInfo, error)
	RenameSheet(ctx context.Context, oldTitle, newTitle string) error
	AppendRows(ctx context.Context, sheetName string, rows [][]interface{}) (*sheets.AppendResult, error)
	AddColumn(ctx context.Context, sheetName, header string, values []interface{}) (*sheets.ColumnResult, error)
	DeleteSheet(ctx context.Context, sheetName string) error
	DeleteRows(ctx context.Context, sheetName string, start, end int64) error
	DeleteColumns(ctx context.Context, sheetName string, start, end int64) error
	ExportSheets(ctx context.Context, sheetNames []string, a1Range, path string) (*sheets.ExportResult, error)
}

// RegisterSheetsTools registers all spreadsheet tools with the MCP server.
// In read-only mode only the read and export tools are registered; the
// mutating tools are left off the surface entirely.
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register read tools: %w", err)
	}

	if err := registerExportTools(s, sc); err != nil {
		return fmt.Errorf("failed to register export tools: %w", err)
	}

	if !readOnly {
		if err := registerWriteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register write tools: %w", err)
		}
		if err := registerDeleteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register delete tools: %w", err)
		}
	}

	return nil
}

// toolError renders err as a tool failure labeled with its error kind, so
// agents can react to the failure class without parsing the message.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", sheets.KindOf(err), err))
}
