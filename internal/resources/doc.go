// Package resources provides MCP resources describing the configured
// spreadsheet. Resources are read-only data sources that MCP clients can
// fetch without invoking a tool, such as the spreadsheet's sheet inventory.
package resources
