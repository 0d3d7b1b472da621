// Package cmd implements the command-line interface for sheets-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the configured spreadsheet
//   - list: Print the spreadsheet's sheet inventory and exit
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
