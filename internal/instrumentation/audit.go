package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ToolInvocation captures all information about a tool invocation for audit logging.
// This provides a comprehensive audit trail for all MCP tool calls.
//
// # Privacy Considerations
//
// The SpreadsheetID, Sheet, and Range fields identify user documents. When logging, consider:
//   - Using LogAttrs for general logs, which omits all target fields
//   - Only logging targets in audit-specific log streams (LogAuditAttrs)
//   - Ensuring audit logs have appropriate access controls
type ToolInvocation struct {
	// Tool name
	Tool string

	// Target information for the spreadsheet
	SpreadsheetID string // Spreadsheet document ID
	Sheet         string // Sheet (tab) name within the spreadsheet
	Range         string // A1 range within the sheet, if any

	// Service routing
	ServiceName string // Google service (sheets)
	Operation   string // Operation type (list, get, read, create, update, append, delete, export)

	// Execution details
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Tracing context
	TraceID string
	SpanID  string
}

// Status returns "success" or "error" based on the Success field.
func (ti *ToolInvocation) Status() string {
	if ti.Success {
		return StatusSuccess
	}
	return StatusError
}

// LogAttrs returns slog attributes for structured logging.
// This provides a consistent set of fields for all tool invocation logs.
//
// # Cardinality
//
// This function omits spreadsheet targets (document IDs, sheet names, ranges)
// for metrics-compatible logging. For full audit logging, use LogAuditAttrs.
func (ti *ToolInvocation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}

	// Add optional fields only if present
	if ti.ServiceName != "" {
		attrs = append(attrs, slog.String("service", ti.ServiceName))
	}
	if ti.Operation != "" {
		attrs = append(attrs, slog.String("operation", ti.Operation))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}

	return attrs
}

// LogAuditAttrs returns slog attributes for full audit logging.
// This includes the spreadsheet ID, sheet name, and range for audit purposes.
//
// # Security Warning
//
// This method names the documents a tool touched. Ensure audit logs are:
//   - Stored securely with appropriate access controls
//   - Not exposed to general monitoring dashboards
//   - Retained according to compliance requirements
func (ti *ToolInvocation) LogAuditAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}

	// Add all optional fields
	if ti.SpreadsheetID != "" {
		attrs = append(attrs, slog.String("spreadsheet_id", ti.SpreadsheetID))
	}
	if ti.Sheet != "" {
		attrs = append(attrs, slog.String("sheet", ti.Sheet))
	}
	if ti.Range != "" {
		attrs = append(attrs, slog.String("range", ti.Range))
	}
	if ti.ServiceName != "" {
		attrs = append(attrs, slog.String("service", ti.ServiceName))
	}
	if ti.Operation != "" {
		attrs = append(attrs, slog.String("operation", ti.Operation))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", ti.SpanID))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}

	return attrs
}

// NewToolInvocation creates a new ToolInvocation with timing started.
// Call Complete() when the tool operation finishes.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartTime: time.Now(),
	}
}

// WithSpreadsheet sets the spreadsheet document ID.
func (ti *ToolInvocation) WithSpreadsheet(spreadsheetID string) *ToolInvocation {
	ti.SpreadsheetID = spreadsheetID
	return ti
}

// WithSheet sets the sheet (tab) name.
func (ti *ToolInvocation) WithSheet(sheet string) *ToolInvocation {
	ti.Sheet = sheet
	return ti
}

// WithRange sets the A1 range within the sheet.
func (ti *ToolInvocation) WithRange(a1Range string) *ToolInvocation {
	ti.Range = a1Range
	return ti
}

// WithService sets the Google service and operation.
func (ti *ToolInvocation) WithService(serviceName, operation string) *ToolInvocation {
	ti.ServiceName = serviceName
	ti.Operation = operation
	return ti
}

// WithSpanContext extracts trace context from the current span.
func (ti *ToolInvocation) WithSpanContext(ctx context.Context) *ToolInvocation {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		ti.TraceID = span.SpanContext().TraceID().String()
		ti.SpanID = span.SpanContext().SpanID().String()
	}
	return ti
}

// Complete marks the invocation as completed and calculates duration.
// Returns the same ToolInvocation for method chaining.
func (ti *ToolInvocation) Complete(success bool, err error) *ToolInvocation {
	ti.Duration = time.Since(ti.StartTime)
	ti.Success = success
	if err != nil {
		ti.Error = err.Error()
	}
	return ti
}

// CompleteWithError marks the invocation as failed with the given error.
func (ti *ToolInvocation) CompleteWithError(err error) *ToolInvocation {
	return ti.Complete(false, err)
}

// CompleteSuccess marks the invocation as successful.
func (ti *ToolInvocation) CompleteSuccess() *ToolInvocation {
	return ti.Complete(true, nil)
}

// AuditLogger provides structured audit logging for tool invocations.
// It wraps slog.Logger with convenience methods for logging tool operations.
type AuditLogger struct {
	logger         *slog.Logger
	includeTargets bool
	enabled        bool
}

// NewAuditLogger creates a new AuditLogger with the given slog.Logger.
// By default, spreadsheet targets are not included in logs.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:         logger,
		includeTargets: false,
		enabled:        true,
	}
}

// NewAuditLoggerWithConfig creates a new AuditLogger with the given configuration.
func NewAuditLoggerWithConfig(logger *slog.Logger, config AuditLoggingConfig) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:         logger,
		includeTargets: config.IncludeTargets,
		enabled:        config.Enabled,
	}
}

// SetIncludeTargets sets whether to include spreadsheet targets in audit logs.
func (al *AuditLogger) SetIncludeTargets(include bool) {
	al.includeTargets = include
}

// SetEnabled sets whether audit logging is enabled.
func (al *AuditLogger) SetEnabled(enabled bool) {
	al.enabled = enabled
}

// LogToolInvocation logs a tool invocation using the standard log attributes.
// This is suitable for general operational logging with cardinality controls.
// If the logger is configured with IncludeTargets, the spreadsheet ID, sheet,
// and range are logged; otherwise, only the tool name and outcome appear.
func (al *AuditLogger) LogToolInvocation(ti *ToolInvocation) {
	if !al.enabled {
		return
	}

	// Choose between target-bearing and minimal logging based on configuration
	var attrs []slog.Attr
	if al.includeTargets {
		attrs = ti.LogAuditAttrs()
	} else {
		attrs = ti.LogAttrs()
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	if ti.Success {
		al.logger.Info("tool_executed", args...)
	} else {
		al.logger.Warn("tool_failed", args...)
	}
}

// LogToolAudit logs a tool invocation with full audit details.
// This includes the spreadsheet ID, sheet name, and range for audit purposes.
// SECURITY: Ensure audit logs are routed to secure storage with appropriate access controls.
//
// Note: This method respects the enabled flag but always includes targets when
// called, regardless of the IncludeTargets configuration. Use LogToolInvocation
// for configuration-aware logging.
func (al *AuditLogger) LogToolAudit(ti *ToolInvocation) {
	if !al.enabled {
		return
	}

	attrs := ti.LogAuditAttrs()
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	al.logger.Info("tool_audit", args...)
}
