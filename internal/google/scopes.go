package google

import (
	sheets "google.golang.org/api/sheets/v4"
)

// DefaultScopes are the Google OAuth scopes required for full MCP functionality.
// The spreadsheets scope covers every tool: reading sheet metadata and values
// as well as all structural and value mutations.
var DefaultScopes = []string{
	sheets.SpreadsheetsScope,
}
