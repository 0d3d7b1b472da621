// Package logging provides structured logging utilities for the sheets-mcp application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Stderr output so the stdio MCP transport owns stdout
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "sheets.read_range")
//	logger.Info("range read",
//	    logging.Sheet("Sales"),
//	    logging.Status("success"))
//
// Keep oversized cell values out of the logs:
//
//	logger.Debug("cell value",
//	    "value", logging.TruncateCell(cell))
package logging
