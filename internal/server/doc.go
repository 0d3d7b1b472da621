// Package server provides the MCP server context, session tracking,
// and the HTTP transport for the sheets-mcp application.
//
// # Key Components
//
// ServerContext holds shared state for tool handlers: configuration,
// service account credentials, and a lazily initialized Google Sheets
// client. The client is created on first use and cached for the
// lifetime of the server.
//
// HTTPServer wraps an MCP server with the streamable HTTP transport.
// It serves the MCP endpoint on /mcp alongside health endpoints and
// records request metrics for every call.
//
// SessionTracker follows active MCP sessions on the HTTP transport.
// Sessions are registered when a client first presents a session ID
// and expire after a period of inactivity, feeding the active_sessions
// gauge.
//
// MetricsServer exposes Prometheus metrics on a dedicated port,
// isolated from the MCP traffic so operational data is never reachable
// through the client-facing listener.
//
// HealthChecker provides Kubernetes-style liveness and readiness
// endpoints:
//   - /healthz: liveness, always healthy while the process runs
//   - /readyz: readiness, healthy once the server accepts traffic
//   - /healthz/detailed: readiness plus uptime and version details
package server
