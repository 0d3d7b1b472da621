package sheets_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/sheets"
	"github.com/teemow/sheets-mcp/internal/tools/batch"
	"github.com/teemow/sheets-mcp/internal/tools/common"
)

// registerExportTools registers the workbook export tool
func registerExportTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	exportSheetTool := mcp.NewTool("export_sheet",
		mcp.WithDescription("Export one or more sheets to an .xlsx workbook on the server filesystem. The remote spreadsheet is not modified."),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Sheet name (string) or array of sheet names to export"),
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Output file path for the workbook, e.g. '/tmp/sales.xlsx'"),
		),
		mcp.WithString("range",
			mcp.Description("A1 notation range applied to every exported sheet. Exports all data when omitted."),
		),
	)

	s.AddTool(exportSheetTool, common.InstrumentedToolHandlerWithService(
		"export_sheet", instrumentation.ServiceSheets, instrumentation.OperationExport, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleExportSheet(ctx, api, request)
		}))

	return nil
}

func handleExportSheet(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	// Parse sheet_name - can be string or array
	sheetNames, err := batch.ParseStringOrArray(args["sheet_name"], "sheet_name")
	if err != nil {
		return toolError(fmt.Errorf("%w: %v", sheets.ErrValidation, err)), nil
	}

	path, err := common.RequiredString(args, "path")
	if err != nil {
		return toolError(err), nil
	}

	a1Range := common.OptionalString(args, "range")

	// All-or-nothing: a partially written workbook is worse than a clean
	// failure, so any unreadable sheet aborts before the file is written.
	res, err := api.ExportSheets(ctx, sheetNames, a1Range, path)
	if err != nil {
		return toolError(fmt.Errorf("failed to export: %w", err)), nil
	}

	result := fmt.Sprintf("Exported %d sheet(s) (%d rows) to %s: %s",
		len(res.Sheets), res.Rows, res.Path, strings.Join(res.Sheets, ", "))
	return mcp.NewToolResultText(result), nil
}
