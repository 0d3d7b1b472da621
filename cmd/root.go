package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the sheets-mcp application
var rootCmd = &cobra.Command{
	Use:   "sheets-mcp",
	Short: "MCP server exposing a Google Spreadsheet to AI assistants",
	Long: `sheets-mcp exposes a single Google Spreadsheet through the Model Context
Protocol so that AI assistants can list, read, and edit its sheets.

Authentication uses a service account key file; share the spreadsheet with
the service account's email address to grant access.

It can run as:
  - An MCP server over stdio or streamable HTTP (default)
  - A one-shot CLI listing the spreadsheet's sheets (list)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sheets-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
