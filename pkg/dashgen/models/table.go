// Package models defines data structures for dashboard generation.
package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound indicates a named column is absent from a table header.
var ErrColumnNotFound = errors.New("column not found")

// Table represents an ordered tabular dataset loaded from a source file.
// Column order is preserved exactly as read; rows have no identity beyond
// their position.
type Table struct {
	// Headers holds the column names from the source header row, in order.
	Headers []string
	// Records holds the data rows. Values are int64, float64, or string.
	Records [][]any
}

// ColumnIndex returns the 1-based index of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Headers {
		if h == name {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// ColumnLetter returns the spreadsheet column letter (A, B, ...) of the
// named column. Formulas are bound to columns by name and resolved to
// positions here, so a reordered source fails loudly instead of silently
// aggregating the wrong column.
func (t *Table) ColumnLetter(name string) (string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return "", err
	}
	letter, err := excelize.ColumnNumberToName(idx)
	if err != nil {
		return "", err
	}
	return letter, nil
}

// SumColumns appends a derived column named dest whose value per row is
// the sum of the named numeric columns. Row order is unchanged. The
// contract is one-shot: if dest already exists the call is rejected
// rather than double-appending.
func (t *Table) SumColumns(cols []string, dest string) error {
	if _, err := t.ColumnIndex(dest); err == nil {
		return fmt.Errorf("column %q already present", dest)
	}

	indexes := make([]int, len(cols))
	for i, name := range cols {
		idx, err := t.ColumnIndex(name)
		if err != nil {
			return err
		}
		indexes[i] = idx
	}

	width := len(t.Headers)
	for r, rec := range t.Records {
		var total float64
		for _, idx := range indexes {
			if idx > len(rec) {
				continue
			}
			v, err := toFloat(rec[idx-1])
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", r+1, t.Headers[idx-1], err)
			}
			total += v
		}
		// Pad short rows so the derived value lands in the dest column.
		for len(rec) < width {
			rec = append(rec, "")
		}
		t.Records[r] = append(rec, total)
	}

	t.Headers = append(t.Headers, dest)
	return nil
}

// UniqueStrings returns the sorted set of distinct non-empty string
// values in the named column. Ordering is lexicographic, case-sensitive.
func (t *Table) UniqueStrings(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, rec := range t.Records {
		if idx > len(rec) {
			continue
		}
		s := fmt.Sprint(rec[idx-1])
		if s == "" {
			continue
		}
		seen[s] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for s := range seen {
		values = append(values, s)
	}
	sort.Strings(values)
	return values, nil
}

// toFloat coerces a loaded cell value to float64. Empty strings count as
// zero; any other string is a type error surfaced to the caller.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		if n == "" {
			return 0, nil
		}
		return 0, fmt.Errorf("non-numeric value %q", n)
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("non-numeric value %v", v)
	}
}
