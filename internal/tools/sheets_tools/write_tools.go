package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/tools/common"
)

// registerWriteTools registers the tools that add or change spreadsheet content
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Create sheet tool
	createSheetTool := mcp.NewTool("create_sheet",
		mcp.WithDescription("Create a new sheet (tab) in the spreadsheet"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title for the new sheet. Must not collide with an existing sheet."),
		),
	)

	s.AddTool(createSheetTool, common.InstrumentedToolHandlerWithService(
		"create_sheet", instrumentation.ServiceSheets, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleCreateSheet(ctx, api, request)
		}))

	// Rename sheet tool
	renameSheetTool := mcp.NewTool("rename_sheet",
		mcp.WithDescription("Rename an existing sheet (tab)"),
		mcp.WithString("old_title",
			mcp.Required(),
			mcp.Description("Current title of the sheet"),
		),
		mcp.WithString("new_title",
			mcp.Required(),
			mcp.Description("New title for the sheet. Must not collide with another sheet."),
		),
	)

	s.AddTool(renameSheetTool, common.InstrumentedToolHandlerWithService(
		"rename_sheet", instrumentation.ServiceSheets, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleRenameSheet(ctx, api, request)
		}))

	// Append data tool
	appendDataTool := mcp.NewTool("append_data",
		mcp.WithDescription("Append rows after the existing content of a sheet"),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Name of the sheet (tab) to append to"),
		),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("Rows to append as a JSON array of arrays of scalar values, e.g. [[\"2024-01-02\", 200]]"),
		),
	)

	s.AddTool(appendDataTool, common.InstrumentedToolHandlerWithService(
		"append_data", instrumentation.ServiceSheets, instrumentation.OperationAppend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleAppendData(ctx, api, request)
		}))

	// Add column tool
	addColumnTool := mcp.NewTool("add_column",
		mcp.WithDescription("Add a column immediately right of the current data, optionally with a header and values"),
		mcp.WithString("sheet_name",
			mcp.Required(),
			mcp.Description("Name of the sheet (tab) to add the column to"),
		),
		mcp.WithString("header",
			mcp.Description("Header written in the first row of the new column"),
		),
		mcp.WithString("values",
			mcp.Description("Column values as a JSON array of scalar values, written from the second row down"),
		),
	)

	s.AddTool(addColumnTool, common.InstrumentedToolHandlerWithService(
		"add_column", instrumentation.ServiceSheets, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			api, err := sc.SheetsClient()
			if err != nil {
				return toolError(err), nil
			}
			return handleAddColumn(ctx, api, request)
		}))

	return nil
}

func handleCreateSheet(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, err := common.RequiredString(args, "title")
	if err != nil {
		return toolError(err), nil
	}

	info, err := api.CreateSheet(ctx, title)
	if err != nil {
		return toolError(fmt.Errorf("failed to create sheet: %w", err)), nil
	}

	result := fmt.Sprintf("Sheet %q created (sheet ID %d, %d rows x %d columns)",
		info.Title, info.SheetID, info.RowCount, info.ColumnCount)
	return mcp.NewToolResultText(result), nil
}

func handleRenameSheet(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	oldTitle, err := common.RequiredString(args, "old_title")
	if err != nil {
		return toolError(err), nil
	}
	newTitle, err := common.RequiredString(args, "new_title")
	if err != nil {
		return toolError(err), nil
	}

	if err := api.RenameSheet(ctx, oldTitle, newTitle); err != nil {
		return toolError(fmt.Errorf("failed to rename sheet: %w", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Sheet %q renamed to %q", oldTitle, newTitle)), nil
}

func handleAppendData(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sheetName, err := common.RequiredString(args, "sheet_name")
	if err != nil {
		return toolError(err), nil
	}
	rows, err := common.RowMatrix(args, "values")
	if err != nil {
		return toolError(err), nil
	}

	res, err := api.AppendRows(ctx, sheetName, rows)
	if err != nil {
		return toolError(fmt.Errorf("failed to append data: %w", err)), nil
	}

	result := fmt.Sprintf("Appended %d row(s) (%d cells) to %q", res.UpdatedRows, res.UpdatedCells, sheetName)
	if res.UpdatedRange != "" {
		result += fmt.Sprintf(" at %s", res.UpdatedRange)
	}
	return mcp.NewToolResultText(result), nil
}

func handleAddColumn(ctx context.Context, api SheetsAPI, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sheetName, err := common.RequiredString(args, "sheet_name")
	if err != nil {
		return toolError(err), nil
	}
	header := common.OptionalString(args, "header")
	values, err := common.ScalarList(args, "values")
	if err != nil {
		return toolError(err), nil
	}

	res, err := api.AddColumn(ctx, sheetName, header, values)
	if err != nil {
		return toolError(fmt.Errorf("failed to add column: %w", err)), nil
	}

	result := fmt.Sprintf("Added column %s to %q (%d cells written)", res.Column, sheetName, res.UpdatedCells)
	return mcp.NewToolResultText(result), nil
}
