package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/sheets"
	"github.com/teemow/sheets-mcp/internal/tools/batch"
	"github.com/teemow/sheets-mcp/internal/tools/common"
)

// registerDeleteTools registers the irreversible tools
func registerDeleteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Delete sheet tool
	deleteSheetTool := mcp.NewTool("delete_sheet",
		mcp.WithDescription("Delete one or more sheets (tabs). This is irreversible."),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Sheet name (string) or array of sheet names to delete"),
		),
	)

	s.AddTool(deleteSheetTool, common.InstrumentedToolHandlerWithService(
		"delete_sheet", instrumentation.ServiceSheets, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleDeleteSheet(ctx, api, request)
		}))

	// Delete row tool
	deleteRowTool := mcp.NewTool("delete_row",
		mcp.WithDescription("Delete a half-open range of rows [start, end) from a sheet. Indices are zero-based. This is irreversible."),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Name of the sheet (tab) to delete rows from"),
		),
		mcp.WithNumber("start",
			mcp.Required(),
			mcp.Description("First row index to delete (zero-based, inclusive)"),
		),
		mcp.WithNumber("end",
			mcp.Required(),
			mcp.Description("Row index to stop at (zero-based, exclusive)"),
		),
	)

	s.AddTool(deleteRowTool, common.InstrumentedToolHandlerWithService(
		"delete_row", instrumentation.ServiceSheets, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleDeleteRow(ctx, api, request)
		}))

	// Delete column tool
	deleteColumnTool := mcp.NewTool("delete_column",
		mcp.WithDescription("Delete a half-open range of columns [start, end) from a sheet. Indices are zero-based. This is irreversible."),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Name of the sheet (tab) to delete columns from"),
		),
		mcp.WithNumber("start",
			mcp.Required(),
			mcp.Description("First column index to delete (zero-based, inclusive)"),
		),
		mcp.WithNumber("end",
			mcp.Required(),
			mcp.Description("Column index to stop at (zero-based, exclusive)"),
		),
	)

	s.AddTool(deleteColumnTool, common.InstrumentedToolHandlerWithService(
		"delete_column", instrumentation.ServiceSheets, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleDeleteColumn(ctx, api, request)
		}))

	return nil
}

func handleDeleteSheet(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	// Parse sheet_name - can be string or array
	sheetNames, err := batch.ParseStringOrArray(args["sheet_name"], "sheet_name")
	if err != nil {
		return toolError(fmt.Errorf("%w: %v", sheets.ErrValidation, err)), nil
	}

	// Process each sheet independently so one missing sheet does not
	// abort the rest
	results := batch.ProcessBatch(sheetNames, func(sheetName string) (string, error) {
		if err := api.DeleteSheet(ctx, sheetName); err != nil {
			return "", err
		}
		return fmt.Sprintf("Sheet %q deleted", sheetName), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleDeleteRow(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sheetName, start, end, result := deleteRangeArgs(request)
	if result != nil {
		return result, nil
	}

	if err := api.DeleteRows(ctx, sheetName, start, end); err != nil {
		return toolError(fmt.Errorf("failed to delete rows: %w", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted %d row(s) from %q", end-start, sheetName)), nil
}

func handleDeleteColumn(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sheetName, start, end, result := deleteRangeArgs(request)
	if result != nil {
		return result, nil
	}

	if err := api.DeleteColumns(ctx, sheetName, start, end); err != nil {
		return toolError(fmt.Errorf("failed to delete columns: %w", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted %d column(s) from %q", end-start, sheetName)), nil
}

// deleteRangeArgs parses the shared arguments of delete_row and delete_column.
// A non-nil result reports the validation failure to return as-is.
func deleteRangeArgs(request mcp.CallToolRequest) (sheetName string, start, end int64, result *mcp.CallToolResult) {
	args := request.GetArguments()

	sheetName, err := common.RequiredString(args, "sheet_name")
	if err != nil {
		return "", 0, 0, toolError(err)
	}
	start, err = common.RequiredInt(args, "start")
	if err != nil {
		return "", 0, 0, toolError(err)
	}
	end, err = common.RequiredInt(args, "end")
	if err != nil {
		return "", 0, 0, toolError(err)
	}

	return sheetName, start, end, nil
}
