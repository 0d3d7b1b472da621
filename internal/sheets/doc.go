// Package sheets provides a client for working with a single Google
// Spreadsheet.
//
// This package wraps the Google Sheets API (sheets/v4) and provides
// functionality for:
//   - Listing sheets with their grid dimensions
//   - Reading ranges with an optional tail window over the fetched rows
//   - Appending rows and adding columns next to the existing data
//   - Creating, renaming, and deleting sheets
//   - Deleting row and column intervals
//   - Exporting sheets to xlsx workbooks
//
// Failures are classified into sentinel errors (ErrAuth, ErrNotFound,
// ErrConflict, ErrRange, ErrValidation) that callers match with errors.Is.
// Operations are not retried; a failed multi-step operation reports which
// step failed and may leave earlier steps applied.
//
// # Authentication
//
// The client authenticates as a service account. The spreadsheet must be
// shared with the service account's email address; a spreadsheet the account
// cannot see is reported as not found.
//
// # Example Usage
//
//	creds := google.NewKeyFileCredentials("service-account.json")
//	client, err := sheets.NewClientWithCredentials(ctx, creds, spreadsheetID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List all sheets
//	infos, err := client.ListSheets(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read the last 20 rows of a sheet
//	values, err := client.ReadRange(ctx, "Sales", "", 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Append two rows
//	_, err = client.AppendRows(ctx, "Sales", [][]interface{}{
//	    {"2024-01-15", "Laptop", 1200},
//	    {"2024-01-16", "Mouse"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
package sheets
