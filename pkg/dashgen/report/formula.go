package report

import (
	"fmt"
	"strings"
)

// ColumnRef identifies a whole column on a data sheet. Columns are
// resolved from source header names before formulas are built, so the
// generated text always points at the right position even if the source
// column order changes.
type ColumnRef struct {
	Sheet string
	Col   string
}

// Range returns the whole-column reference, e.g. 'Faculty Data'!D:D.
func (r ColumnRef) Range() string {
	return fmt.Sprintf("%s!%s:%s", quoteSheet(r.Sheet), r.Col, r.Col)
}

// SumIfs returns a SUMIFS over sum filtered to rows where crit equals
// the value in critCell.
func SumIfs(sum, crit ColumnRef, critCell string) string {
	return fmt.Sprintf("SUMIFS(%s,%s,%s)", sum.Range(), crit.Range(), critCell)
}

// SumAcross returns the sum of one SUMIFS per column, all filtered on
// the same criterion. Used for both the three faculty-count columns and
// the seven fund columns.
func SumAcross(sums []ColumnRef, crit ColumnRef, critCell string) string {
	parts := make([]string, len(sums))
	for i, col := range sums {
		parts[i] = SumIfs(col, crit, critCell)
	}
	return strings.Join(parts, " + ")
}

// GuardedRatio returns numerator/denominator wrapped in IFERROR with a
// fallback of 0, so empty selectors and zero-match filters surface as 0
// rather than a spreadsheet error value.
func GuardedRatio(numerator, denominator string) string {
	return fmt.Sprintf("IFERROR(%s/%s,0)", numerator, denominator)
}

// quoteSheet wraps a sheet name in single quotes when required by
// formula syntax.
func quoteSheet(name string) string {
	if strings.ContainsAny(name, " -") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}
