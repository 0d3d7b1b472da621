// Package instrumentation provides comprehensive OpenTelemetry instrumentation
// for the sheets-mcp server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for HTTP requests and Google Sheets API calls
//   - Distributed tracing for request flows and API calls
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//   - active_sessions: Gauge of active MCP sessions
//
// Google API Metrics:
//   - google_api_operations_total: Counter of Google API operations by service, operation, status
//   - google_api_operation_duration_seconds: Histogram of Google API operation durations
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - HTTP request handling
//   - MCP tool invocations (tool.<name>)
//   - Google API calls (google.sheets.<operation>)
//
// # Audit Logging
//
// Tool invocations can additionally be written to an audit log stream that
// names the spreadsheet, sheet, and range each tool touched. Target fields
// are withheld from general logs unless explicitly enabled.
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: sheets-mcp)
//   - AUDIT_LOGGING_ENABLED: Enable/disable audit logging (default: true)
//   - AUDIT_LOGGING_INCLUDE_TARGETS: Include spreadsheet targets in audit logs (default: false)
//
// # Example Usage
//
//	// Initialize instrumentation
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "sheets-mcp",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	// Get metrics recorder
//	recorder := provider.Metrics()
//
//	// Record an HTTP request
//	recorder.RecordHTTPRequest(ctx, "POST", "/mcp", 200, time.Since(start))
//
//	// Record a Google API operation
//	recorder.RecordGoogleAPIOperation(ctx, "sheets", "read", "success", time.Since(start))
//
//	// Record an MCP tool invocation
//	recorder.RecordToolInvocation(ctx, "read_sheet_data", "success", time.Since(start))
package instrumentation
