package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is a normalized rectangular view of sheet values. The header row is
// padded with generated column names and every data row is padded with empty
// cells so that all rows share the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Tail returns the last n rows of values. A non-positive n returns values
// unchanged.
func Tail(values [][]interface{}, n int) [][]interface{} {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// TailData keeps the header row plus the last n data rows of values. The
// first row is the header row. A non-positive n returns values unchanged.
func TailData(values [][]interface{}, n int) [][]interface{} {
	if n <= 0 || len(values) == 0 {
		return values
	}
	data := Tail(values[1:], n)
	out := make([][]interface{}, 0, len(data)+1)
	out = append(out, values[0])
	return append(out, data...)
}

// PadRows pads every row with empty strings to the width of the widest row.
// The input rows are not modified.
func PadRows(rows [][]interface{}) [][]interface{} {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]interface{}, len(rows))
	for i, row := range rows {
		padded[i] = make([]interface{}, width)
		copy(padded[i], row)
		for j := len(row); j < width; j++ {
			padded[i][j] = ""
		}
	}

	return padded
}

// NormalizeTable converts raw API values into a Table. The first row becomes
// the header; when data rows are wider than the header, generated names
// (Col_4 for the fourth column and so on) fill the gap, and short rows are
// padded with empty cells.
func NormalizeTable(values [][]interface{}) *Table {
	if len(values) == 0 {
		return &Table{}
	}

	header := make([]string, len(values[0]))
	for i, v := range values[0] {
		header[i] = formatCell(v)
	}

	width := len(header)
	for _, row := range values[1:] {
		if len(row) > width {
			width = len(row)
		}
	}
	for i := len(header); i < width; i++ {
		header = append(header, fmt.Sprintf("Col_%d", i+1))
	}

	rows := make([][]string, 0, len(values)-1)
	for _, row := range values[1:] {
		cells := make([]string, width)
		for i := 0; i < width; i++ {
			if i < len(row) {
				cells[i] = formatCell(row[i])
			}
		}
		rows = append(rows, cells)
	}

	return &Table{Header: header, Rows: rows}
}

// Markdown renders the table as a fixed-width markdown pipe table. An empty
// table renders as an empty string.
func (t *Table) Markdown() string {
	if len(t.Header) == 0 {
		return ""
	}

	header := escapeCells(t.Header)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = escapeCells(row)
	}

	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = max(len(cell), 3)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", w-len(cell)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", w))
		b.WriteString(" |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// SheetListTable builds a Table describing the given sheets, one row per
// sheet in spreadsheet order.
func SheetListTable(sheets []SheetInfo) *Table {
	t := &Table{
		Header: []string{"Index", "Title", "Sheet ID", "Rows", "Columns"},
	}
	for _, s := range sheets {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(s.Index, 10),
			s.Title,
			strconv.FormatInt(s.SheetID, 10),
			strconv.FormatInt(s.RowCount, 10),
			strconv.FormatInt(s.ColumnCount, 10),
		})
	}
	return t
}

// formatCell converts an API cell value to its display string. The API
// returns formatted values as strings; other types show up only with
// non-default render options.
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func escapeCells(cells []string) []string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	return escaped
}
