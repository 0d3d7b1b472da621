package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/sheets"
)

// spreadsheetAPI is the part of the Sheets client the resource handlers use.
type spreadsheetAPI interface {
	Describe(ctx context.Context) (*sheets.SpreadsheetInfo, error)
}

// RegisterSpreadsheetResources registers resources describing the configured
// spreadsheet. Resources are read-only, so they are available regardless of
// the read-only flag.
func RegisterSpreadsheetResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	summaryResource := mcp.NewResource(
		"spreadsheet://summary",
		"Spreadsheet Summary",
		mcp.WithResourceDescription("Title, URL, and sheet inventory of the configured spreadsheet"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(summaryResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		api, err := sc.SheetsClient()
		if err != nil {
			return nil, fmt.Errorf("no Sheets client available: %w", err)
		}
		return handleSpreadsheetSummary(ctx, request, api)
	})

	return nil
}

// handleSpreadsheetSummary returns the spreadsheet metadata and its sheet list
func handleSpreadsheetSummary(ctx context.Context, request mcp.ReadResourceRequest, api spreadsheetAPI) ([]mcp.ResourceContents, error) {
	info, err := api.Describe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet summary: %w", err)
	}

	summaryData := map[string]interface{}{
		"spreadsheetId": info.ID,
		"title":         info.Title,
		"url":           info.URL,
		"sheetCount":    len(info.Sheets),
		"sheets":        info.Sheets,
		"description":   "Sheet inventory of the configured spreadsheet",
	}

	jsonData, err := json.MarshalIndent(summaryData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
