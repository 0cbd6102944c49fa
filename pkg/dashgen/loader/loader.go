// Package loader reads tabular xlsx sources into in-memory tables.
package loader

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/avandrel/dashgen/pkg/dashgen/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoData indicates a source workbook has no header row to load.
var ErrNoData = errors.New("no data rows")

// Load reads the first sheet of an xlsx workbook into a Table. Row 1 is
// taken as the header row; remaining rows become records with values
// coerced to int64, float64, or string. Column order and all original
// values are preserved.
func Load(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	}

	table := &models.Table{Headers: rows[0]}
	for _, row := range rows[1:] {
		rec := make([]any, len(row))
		for i, cell := range row {
			rec[i] = parseValue(cell)
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
