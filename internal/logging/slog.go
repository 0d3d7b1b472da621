package logging

import (
	"log/slog"
	"os"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation     = "operation"
	KeyTool          = "tool"
	KeySheet         = "sheet"
	KeyRange         = "range"
	KeySpreadsheetID = "spreadsheet_id"
	KeyDuration      = "duration"
	KeyStatus        = "status"
	KeyKind          = "kind"
	KeyError         = "error"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Setup configures the default slog logger. Logs always go to stderr so that
// the stdio MCP transport keeps stdout free for protocol frames.
func Setup(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// WithSheet returns a logger with the sheet attribute set.
func WithSheet(logger *slog.Logger, sheet string) *slog.Logger {
	return logger.With(slog.String(KeySheet, sheet))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Sheet returns a slog attribute for the sheet name.
func Sheet(sheet string) slog.Attr {
	return slog.String(KeySheet, sheet)
}

// Range returns a slog attribute for an A1 range.
func Range(rng string) slog.Attr {
	return slog.String(KeyRange, rng)
}

// SpreadsheetID returns a slog attribute for the spreadsheet ID.
func SpreadsheetID(id string) slog.Attr {
	return slog.String(KeySpreadsheetID, id)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Kind returns a slog attribute for an error kind label.
func Kind(kind string) slog.Attr {
	return slog.String(KeyKind, kind)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// TruncateCell shortens a cell value for logging so that oversized spreadsheet
// content never floods the logs.
func TruncateCell(value string) string {
	const maxLen = 64
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "..."
}
