package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/sheets-mcp/internal/config"
	"github.com/teemow/sheets-mcp/internal/logging"
	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/sheets"
)

func newListCmd() *cobra.Command {
	var (
		debugMode          bool
		spreadsheetID      string
		serviceAccountFile string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sheets of the configured spreadsheet",
		Long: `Print the sheet (tab) inventory of the configured spreadsheet and exit.

Useful for verifying that the spreadsheet ID and service account key are
set up correctly before starting the MCP server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debugMode)

			config.LoadEnv()
			cfg, err := config.Load(spreadsheetID, serviceAccountFile)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx := context.Background()
			serverContext, err := server.NewServerContext(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to create server context: %w", err)
			}
			defer func() {
				_ = serverContext.Shutdown()
			}()

			client, err := serverContext.SheetsClient()
			if err != nil {
				return err
			}

			infos, err := client.ListSheets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sheets: %w", err)
			}

			if len(infos) == 0 {
				fmt.Println("No sheets found in this spreadsheet.")
				return nil
			}

			fmt.Println(sheets.SheetListTable(infos).Markdown())
			return nil
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "ID of the Google Spreadsheet to operate on. Can also use SPREADSHEET_ID env var.")
	cmd.Flags().StringVar(&serviceAccountFile, "service-account-file", "", "Path to the service account key JSON file. Can also use SERVICE_ACCOUNT_FILE env var.")

	return cmd
}
