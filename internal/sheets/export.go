package sheets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SheetData pairs a sheet name with its values for workbook export.
type SheetData struct {
	Name   string
	Values [][]interface{}
}

// ExportSheets reads the given sheets and writes them to an xlsx workbook at
// path, one worksheet per sheet, preserving the requested order. If a1Range
// is non-empty only that range of each sheet is exported.
func (c *Client) ExportSheets(ctx context.Context, sheetNames []string, a1Range, path string) (*ExportResult, error) {
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("%w: no sheets to export", ErrValidation)
	}

	data := make([]SheetData, 0, len(sheetNames))
	rows := 0
	for _, name := range sheetNames {
		values, err := c.ReadRange(ctx, name, a1Range, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		data = append(data, SheetData{Name: name, Values: values})
		rows += len(values)
	}

	if err := WriteWorkbook(path, data); err != nil {
		return nil, err
	}

	return &ExportResult{
		Path:   path,
		Sheets: sheetNames,
		Rows:   rows,
	}, nil
}

// WriteWorkbook writes the given sheets to an xlsx workbook at path. Parent
// directories are created as needed.
func WriteWorkbook(path string, sheets []SheetData) error {
	if len(sheets) == 0 {
		return fmt.Errorf("%w: no sheets to export", ErrValidation)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet excelize creates.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
			}
		}

		for r, row := range sheet.Values {
			cell := fmt.Sprintf("A%d", r+1)
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d of sheet %q: %w", r+1, sheet.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
