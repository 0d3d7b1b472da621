package common

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/teemow/sheets-mcp/internal/sheets"
)

// TargetsFromArgs extracts the sheet and range a tool invocation targets,
// for metrics labels and audit logging. Tools name their sheet argument
// sheet_name, title (create_sheet) or old_title (rename_sheet).
func TargetsFromArgs(args map[string]interface{}) (sheet, rangeSpec string) {
	for _, key := range []string{"sheet_name", "title", "old_title"} {
		if v, ok := args[key].(string); ok && v != "" {
			sheet = v
			break
		}
	}
	if v, ok := args["range"].(string); ok {
		rangeSpec = v
	}
	return sheet, rangeSpec
}

// RequiredString returns the named string argument, or a validation error
// when it is missing, empty, or not a string.
func RequiredString(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s is required", sheets.ErrValidation, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", sheets.ErrValidation, key)
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", sheets.ErrValidation, key)
	}
	return s, nil
}

// OptionalString returns the named string argument, or "" when absent.
func OptionalString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// RequiredInt returns the named integer argument. JSON numbers arrive as
// float64; fractional values are rejected rather than truncated.
func RequiredInt(args map[string]interface{}, key string) (int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s is required", sheets.ErrValidation, key)
	}
	return coerceInt(v, key)
}

// OptionalInt returns the named integer argument, or def when absent.
func OptionalInt(args map[string]interface{}, key string, def int64) (int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return def, nil
	}
	return coerceInt(v, key)
}

func coerceInt(v interface{}, key string) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %s must be a whole number", sheets.ErrValidation, key)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", sheets.ErrValidation, key)
	}
}

// RowMatrix coerces the named argument into rows of cells for a write
// operation. The argument may be a real array or a string holding a JSON
// array (agents sometimes send it serialized). Each row must be an array;
// each cell must be a scalar (string, number, boolean, or null).
func RowMatrix(args map[string]interface{}, key string) ([][]interface{}, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s is required", sheets.ErrValidation, key)
	}
	raw, err := coerceArray(v, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s cannot be empty", sheets.ErrValidation, key)
	}

	rows := make([][]interface{}, 0, len(raw))
	for i, r := range raw {
		cells, ok := r.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be an array of values", sheets.ErrValidation, key, i)
		}
		for j, cell := range cells {
			if !isScalar(cell) {
				return nil, fmt.Errorf("%w: %s[%d][%d] must be a string, number, boolean, or null", sheets.ErrValidation, key, i, j)
			}
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// ScalarList coerces the named argument into a flat list of scalar values,
// accepting a real array or a string holding a JSON array. Absent arguments
// yield nil without error.
func ScalarList(args map[string]interface{}, key string) ([]interface{}, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, err := coerceArray(v, key)
	if err != nil {
		return nil, err
	}
	for i, cell := range raw {
		if !isScalar(cell) {
			return nil, fmt.Errorf("%w: %s[%d] must be a string, number, boolean, or null", sheets.ErrValidation, key, i)
		}
	}
	return raw, nil
}

func coerceArray(v interface{}, key string) ([]interface{}, error) {
	switch a := v.(type) {
	case []interface{}:
		return a, nil
	case string:
		var items []interface{}
		if err := json.Unmarshal([]byte(a), &items); err != nil {
			return nil, fmt.Errorf("%w: %s must be a JSON array", sheets.ErrValidation, key)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s must be an array", sheets.ErrValidation, key)
	}
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case nil, string, float64, bool, int, int64:
		return true
	default:
		return false
	}
}
