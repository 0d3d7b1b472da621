package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/teemow/sheets-mcp/internal/google"
	"github.com/teemow/sheets-mcp/internal/logging"
)

const (
	dimensionRows    = "ROWS"
	dimensionColumns = "COLUMNS"
)

// Client wraps the Google Sheets service for a single spreadsheet. All
// operations target the spreadsheet the client was created for.
//
// Note: values cross this boundary as [][]interface{} because that is what
// the Google Sheets API mandates. Rendering code should normalize values
// into a Table for type-safe access.
type Client struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

// NewClient creates a Sheets client for the given spreadsheet using the
// provided client options.
func NewClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

// NewClientWithCredentials creates a Sheets client authenticated through the
// given credentials provider.
func NewClientWithCredentials(ctx context.Context, creds google.CredentialsProvider, spreadsheetID string) (*Client, error) {
	ts, err := creds.TokenSource(ctx, sheetsv4.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	return NewClient(ctx, spreadsheetID, option.WithTokenSource(ts))
}

// SpreadsheetID returns the ID of the spreadsheet this client operates on.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// Describe retrieves the spreadsheet metadata including all contained sheets.
func (c *Client) Describe(ctx context.Context) (*SpreadsheetInfo, error) {
	sp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", classify(err))
	}

	info := &SpreadsheetInfo{
		ID:  c.spreadsheetID,
		URL: sp.SpreadsheetUrl,
	}
	if sp.Properties != nil {
		info.Title = sp.Properties.Title
	}
	for _, sh := range sp.Sheets {
		info.Sheets = append(info.Sheets, toSheetInfo(sh))
	}

	return info, nil
}

// ListSheets lists all sheets of the spreadsheet in spreadsheet order.
func (c *Client) ListSheets(ctx context.Context) ([]SheetInfo, error) {
	info, err := c.Describe(ctx)
	if err != nil {
		return nil, err
	}
	return info.Sheets, nil
}

// sheetByTitle resolves a sheet by its exact title.
func (c *Client) sheetByTitle(ctx context.Context, title string) (*SheetInfo, error) {
	sheets, err := c.ListSheets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range sheets {
		if sheets[i].Title == title {
			return &sheets[i], nil
		}
	}

	return nil, fmt.Errorf("%w: sheet %q", ErrNotFound, title)
}

// ReadRange reads values from the named sheet. If a1Range is empty the whole
// sheet is read. A positive tailLimit keeps the header row and only the last
// tailLimit data rows of the fetched window.
func (c *Client) ReadRange(ctx context.Context, sheetName, a1Range string, tailLimit int) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeRef(sheetName, a1Range)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range: %w", classify(err))
	}

	return TailData(resp.Values, tailLimit), nil
}

// AppendRows appends rows after the last data row of the named sheet. Short
// rows are padded with empty cells to the width of the widest row so that
// the rows land in consecutive columns.
func (c *Client) AppendRows(ctx context.Context, sheetName string, rows [][]interface{}) (*AppendResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows to append", ErrValidation)
	}

	vr := &sheetsv4.ValueRange{
		Values: PadRows(rows),
	}

	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeRef(sheetName, ""), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append rows: %w", classify(err))
	}

	result := &AppendResult{}
	if resp.Updates != nil {
		result.UpdatedRange = resp.Updates.UpdatedRange
		result.UpdatedRows = resp.Updates.UpdatedRows
		result.UpdatedCells = resp.Updates.UpdatedCells
	}

	return result, nil
}

// AddColumn writes a new column immediately to the right of the current data
// extent of the named sheet. The header lands in the first row and values
// start in the second row. The sheet grid is widened when the new column
// would not fit.
func (c *Client) AddColumn(ctx context.Context, sheetName, header string, values []interface{}) (*ColumnResult, error) {
	if header == "" && len(values) == 0 {
		return nil, fmt.Errorf("%w: header or values required", ErrValidation)
	}

	info, err := c.sheetByTitle(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	data, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeRef(sheetName, "")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read data extent: %w", classify(err))
	}

	width := 0
	for _, row := range data.Values {
		if len(row) > width {
			width = len(row)
		}
	}

	if int64(width) >= info.ColumnCount {
		if err := c.growColumns(ctx, info.SheetID, int64(width)+1); err != nil {
			return nil, fmt.Errorf("failed to widen sheet grid: %w", err)
		}
		slog.Debug("widened sheet grid",
			logging.Sheet(sheetName),
			slog.Int64("columns", int64(width)+1))
	}

	column := make([][]interface{}, 0, len(values)+1)
	column = append(column, []interface{}{header})
	for _, v := range values {
		column = append(column, []interface{}{v})
	}

	letter := columnName(width + 1)
	resp, err := c.updateRange(ctx, rangeRef(sheetName, letter+"1"), column)
	if err != nil {
		return nil, fmt.Errorf("failed to write column: %w", err)
	}

	result := &ColumnResult{Column: letter}
	if resp != nil {
		result.UpdatedRange = resp.UpdatedRange
		result.UpdatedCells = resp.UpdatedCells
	}

	return result, nil
}

// CreateSheet adds a new empty sheet with the given title.
func (c *Client) CreateSheet(ctx context.Context, title string) (*SheetInfo, error) {
	req := &sheetsv4.Request{
		AddSheet: &sheetsv4.AddSheetRequest{
			Properties: &sheetsv4.SheetProperties{
				Title: title,
			},
		},
	}

	resp, err := c.batchUpdate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet %q: %w", title, err)
	}

	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil {
		info := toSheetInfo(&sheetsv4.Sheet{Properties: resp.Replies[0].AddSheet.Properties})
		return &info, nil
	}

	return &SheetInfo{Title: title}, nil
}

// RenameSheet changes the title of an existing sheet.
func (c *Client) RenameSheet(ctx context.Context, oldTitle, newTitle string) error {
	sheets, err := c.ListSheets(ctx)
	if err != nil {
		return err
	}

	var target *SheetInfo
	newTaken := false
	for i := range sheets {
		if sheets[i].Title == oldTitle {
			target = &sheets[i]
		}
		if sheets[i].Title == newTitle {
			newTaken = true
		}
	}

	if target == nil {
		return fmt.Errorf("%w: sheet %q", ErrNotFound, oldTitle)
	}
	if newTaken && oldTitle != newTitle {
		return fmt.Errorf("%w: sheet %q", ErrConflict, newTitle)
	}

	req := &sheetsv4.Request{
		UpdateSheetProperties: &sheetsv4.UpdateSheetPropertiesRequest{
			Properties: &sheetsv4.SheetProperties{
				SheetId: target.SheetID,
				Title:   newTitle,
			},
			Fields: "title",
		},
	}

	if _, err := c.batchUpdate(ctx, req); err != nil {
		return fmt.Errorf("failed to rename sheet %q: %w", oldTitle, err)
	}

	return nil
}

// DeleteSheet removes the named sheet from the spreadsheet.
func (c *Client) DeleteSheet(ctx context.Context, sheetName string) error {
	target, err := c.sheetByTitle(ctx, sheetName)
	if err != nil {
		return err
	}

	req := &sheetsv4.Request{
		DeleteSheet: &sheetsv4.DeleteSheetRequest{
			SheetId: target.SheetID,
		},
	}

	if _, err := c.batchUpdate(ctx, req); err != nil {
		return fmt.Errorf("failed to delete sheet %q: %w", sheetName, err)
	}

	return nil
}

// DeleteRows removes the zero-based, half-open row interval [start, end)
// from the named sheet.
func (c *Client) DeleteRows(ctx context.Context, sheetName string, start, end int64) error {
	return c.deleteDimension(ctx, sheetName, dimensionRows, start, end)
}

// DeleteColumns removes the zero-based, half-open column interval
// [start, end) from the named sheet.
func (c *Client) DeleteColumns(ctx context.Context, sheetName string, start, end int64) error {
	return c.deleteDimension(ctx, sheetName, dimensionColumns, start, end)
}

func (c *Client) deleteDimension(ctx context.Context, sheetName, dimension string, start, end int64) error {
	if err := validateIndexRange(start, end); err != nil {
		return err
	}

	target, err := c.sheetByTitle(ctx, sheetName)
	if err != nil {
		return err
	}

	size := target.RowCount
	if dimension == dimensionColumns {
		size = target.ColumnCount
	}
	if end > size {
		return fmt.Errorf("%w: [%d, %d) exceeds the sheet's %d %s", ErrRange, start, end, size, strings.ToLower(dimension))
	}

	req := &sheetsv4.Request{
		DeleteDimension: &sheetsv4.DeleteDimensionRequest{
			Range: &sheetsv4.DimensionRange{
				SheetId:    target.SheetID,
				Dimension:  dimension,
				StartIndex: start,
				EndIndex:   end,
			},
		},
	}

	if _, err := c.batchUpdate(ctx, req); err != nil {
		return fmt.Errorf("failed to delete %s: %w", strings.ToLower(dimension), err)
	}

	return nil
}

// growColumns widens the sheet grid to the given column count.
func (c *Client) growColumns(ctx context.Context, sheetID, columnCount int64) error {
	req := &sheetsv4.Request{
		UpdateSheetProperties: &sheetsv4.UpdateSheetPropertiesRequest{
			Properties: &sheetsv4.SheetProperties{
				SheetId: sheetID,
				GridProperties: &sheetsv4.GridProperties{
					ColumnCount: columnCount,
				},
			},
			Fields: "gridProperties.columnCount",
		},
	}

	_, err := c.batchUpdate(ctx, req)
	return err
}

func (c *Client) batchUpdate(ctx context.Context, reqs ...*sheetsv4.Request) (*sheetsv4.BatchUpdateSpreadsheetResponse, error) {
	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

func (c *Client) updateRange(ctx context.Context, rng string, values [][]interface{}) (*sheetsv4.UpdateValuesResponse, error) {
	resp, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &sheetsv4.ValueRange{
		Values: values,
	}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

// validateIndexRange checks a zero-based, half-open index interval.
func validateIndexRange(start, end int64) error {
	if start < 0 {
		return fmt.Errorf("%w: start index %d is negative", ErrRange, start)
	}
	if start >= end {
		return fmt.Errorf("%w: start index %d must be less than end index %d", ErrRange, start, end)
	}
	return nil
}

// rangeRef builds an A1 reference for the given sheet and optional range.
// Sheet titles are quoted so that spaces and special characters survive.
func rangeRef(sheetName, a1Range string) string {
	if a1Range == "" {
		return sheetName
	}
	escaped := strings.ReplaceAll(sheetName, "'", "''")
	return fmt.Sprintf("'%s'!%s", escaped, a1Range)
}

// columnName converts a 1-based column number to its A1 letter form
// (1 -> A, 26 -> Z, 27 -> AA).
func columnName(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
