// Package common provides shared utilities for MCP tool implementations:
// argument coercion and validation helpers, target extraction for audit
// labels, and instrumented handler wrappers that record metrics and audit
// logs around every tool invocation.
package common
