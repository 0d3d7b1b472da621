package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/sheets"
	"github.com/teemow/sheets-mcp/internal/tools/common"
)

// registerReadTools registers the tools that only read spreadsheet state
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List sheets tool
	listSheetsTool := mcp.NewTool("list_sheets",
		mcp.WithDescription("List all sheets (tabs) in the spreadsheet with their size and sheet ID"),
	)

	s.AddTool(listSheetsTool, common.InstrumentedToolHandlerWithService(
		"list_sheets", instrumentation.ServiceSheets, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleListSheets(ctx, api, request)
		}))

	// Read sheet data tool
	readSheetDataTool := mcp.NewTool("read_sheet_data",
		mcp.WithDescription("Read data from a sheet and return it as a markdown table. The first row is treated as the header."),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Name of the sheet (tab) to read"),
		),
		mcp.WithString("range",
			mcp.Description("A1 notation range within the sheet, e.g. 'A1:C10'. Reads the whole sheet when omitted."),
		),
		mcp.WithNumber("tail_limit",
			mcp.Description("Return only the last N data rows (plus the header). Useful for large sheets."),
		),
	)

	s.AddTool(readSheetDataTool, common.InstrumentedToolHandlerWithService(
		"read_sheet_data", instrumentation.ServiceSheets, instrumentation.OperationRead, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleReadSheetData(ctx, api, request)
		}))

	return nil
}

func handleListSheets(ctx context.Context, api SheetsAPI, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := api.ListSheets(ctx)
	if err != nil {
		return toolError(fmt.Errorf("failed to list sheets: %w", err)), nil
	}

	if len(infos) == 0 {
		return mcp.NewToolResultText("No sheets found in this spreadsheet."), nil
	}

	return mcp.NewToolResultText(sheets.SheetListTable(infos).Markdown()), nil
}

func handleReadSheetData(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sheetName, err := common.RequiredString(args, "sheet_name")
	if err != nil {
		return toolError(err), nil
	}

	a1Range := common.OptionalString(args, "range")

	tailLimit, err := common.OptionalInt(args, "tail_limit", 0)
	if err != nil {
		return toolError(err), nil
	}
	if tailLimit < 0 {
		return toolError(fmt.Errorf("%w: tail_limit cannot be negative", sheets.ErrValidation)), nil
	}

	values, err := api.ReadRange(ctx, sheetName, a1Range, int(tailLimit))
	if err != nil {
		return toolError(fmt.Errorf("failed to read sheet data: %w", err)), nil
	}

	if len(values) == 0 {
		return mcp.NewToolResultText("No data found."), nil
	}

	return mcp.NewToolResultText(sheets.NormalizeTable(values).Markdown()), nil
}
