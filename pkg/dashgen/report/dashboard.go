package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SourceRefs holds the resolved column references of one data sheet: the
// institution-name column and the value columns formulas aggregate over.
type SourceRefs struct {
	Name   ColumnRef
	Values []ColumnRef
}

// MetricColumn describes one generated metrics-table column: its header
// and a deterministic formula template parameterized by the data row.
type MetricColumn struct {
	Header  string
	Formula func(row int) string
}

// ratio column labels, paired in order with the degree value columns.
var ratioLabels = []string{"Faculty:Bachelors", "Faculty:Masters", "Faculty:Doctoral"}

// AcademicMetrics returns the academic dashboard metric columns: total
// faculty, then one faculty-to-degrees ratio per degree level. The ratio
// numerator references the Total Faculty cell (column B) of the same row.
func AcademicMetrics(faculty, degrees SourceRefs) []MetricColumn {
	cols := []MetricColumn{totalFacultyMetric(faculty)}
	for i, deg := range degrees.Values {
		deg := deg // per-iteration copy: the go directive predates Go 1.22 loop-variable scoping
		cols = append(cols, MetricColumn{
			Header: ratioLabels[i],
			Formula: func(row int) string {
				return GuardedRatio(
					fmt.Sprintf("B%d", row),
					SumIfs(deg, degrees.Name, critCell(row)),
				)
			},
		})
	}
	return cols
}

// ResearchMetrics returns the research dashboard metric columns: total
// faculty, total research expenditures across the fund columns, and
// research dollars per faculty.
func ResearchMetrics(faculty, research SourceRefs) []MetricColumn {
	return []MetricColumn{
		totalFacultyMetric(faculty),
		{
			Header: "Total Research Expenditures",
			Formula: func(row int) string {
				return SumAcross(research.Values, research.Name, critCell(row))
			},
		},
		{
			Header: "Research $ per Faculty",
			Formula: func(row int) string {
				return GuardedRatio(fmt.Sprintf("C%d", row), fmt.Sprintf("B%d", row))
			},
		},
	}
}

func totalFacultyMetric(faculty SourceRefs) MetricColumn {
	return MetricColumn{
		Header: "Total Faculty",
		Formula: func(row int) string {
			return SumAcross(faculty.Values, faculty.Name, critCell(row))
		},
	}
}

// critCell is the institution cell of a metrics row, column-anchored so
// the reference survives horizontal copies.
func critCell(row int) string {
	return fmt.Sprintf("$A%d", row)
}

// DashboardParams configures one dashboard sheet build.
type DashboardParams struct {
	Sheet      string
	Title      string
	ChartTitle string
	// Slots is the number of comparison-institution selectors.
	Slots int
	// InstitutionCount sizes the validation range on the Lookups sheet.
	InstitutionCount int
	Metrics          []MetricColumn
	// ChartSeries lists the sheet column numbers (1-based) plotted by
	// the embedded bar chart.
	ChartSeries []int
	ChartWidth  uint
	ChartHeight uint
}

// selector and metrics layout anchors.
const (
	primarySelectorRow = 2
	firstComparisonRow = 5
	metricsAnchorRow   = 12
)

// Layout positions derived from the comparison-slot count.
func (p DashboardParams) layout() (labelRow, headerRow, firstDataRow, lastDataRow int) {
	selectorEnd := firstComparisonRow + p.Slots - 1
	labelRow = metricsAnchorRow
	// Keep the metrics block clear of the selector block when the slot
	// count grows past the default layout.
	if min := selectorEnd + 3; min > labelRow {
		labelRow = min
	}
	headerRow = labelRow + 1
	firstDataRow = headerRow + 1
	lastDataRow = firstDataRow + p.Slots // primary row plus one per slot
	return labelRow, headerRow, firstDataRow, lastDataRow
}

// BuildDashboard lays out one dashboard sheet: header cells, selector
// cells with dropdown validation, the metrics table of live cross-sheet
// formulas, styling, auto-sized column widths, and the embedded chart.
func BuildDashboard(f *excelize.File, p DashboardParams) error {
	w := newSheetWriter(f, p.Sheet)
	labelRow, headerRow, firstDataRow, lastDataRow := p.layout()
	selectorEnd := firstComparisonRow + p.Slots - 1

	// Header and selector labels.
	w.set(1, 1, p.Title)
	w.set(1, primarySelectorRow, "Primary Institution:")
	w.set(1, 4, "Comparison Institutions:")
	for i := 0; i < p.Slots; i++ {
		w.set(1, firstComparisonRow+i, fmt.Sprintf("Institution %d", i+1))
	}

	// Metrics table: label, header row, then primary + comparison rows.
	w.set(1, labelRow, "Metrics Summary")
	w.set(1, headerRow, "Institution")
	for c, m := range p.Metrics {
		w.set(c+2, headerRow, m.Header)
	}
	for row := firstDataRow; row <= lastDataRow; row++ {
		selector := primarySelectorRow
		if row > firstDataRow {
			selector = firstComparisonRow + (row - firstDataRow - 1)
		}
		w.formula(1, row, fmt.Sprintf("B%d", selector))
		for c, m := range p.Metrics {
			w.formula(c+2, row, m.Formula(row))
		}
	}
	if w.err != nil {
		return w.err
	}

	// Dropdown validation over every selector cell, advisory only.
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("B%d B%d:B%d", primarySelectorRow, firstComparisonRow, selectorEnd)
	dv.SetSqrefDropList(LookupRange(p.InstitutionCount))
	if err := f.AddDataValidation(p.Sheet, dv); err != nil {
		return fmt.Errorf("add validation on %s: %w", p.Sheet, err)
	}

	if err := applyStyles(f, p.Sheet, labelRow, headerRow, lastDataRow, len(p.Metrics)+1); err != nil {
		return err
	}
	if err := w.applyWidths(); err != nil {
		return err
	}
	return addBarChart(f, p, headerRow, firstDataRow, lastDataRow)
}

// sheetWriter writes cells and tracks the longest stringified value per
// column so widths can be sized after the layout is complete. Errors are
// sticky: the first failure is kept and later writes become no-ops.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	widths map[int]int
	err    error
}

func newSheetWriter(f *excelize.File, sheet string) *sheetWriter {
	return &sheetWriter{f: f, sheet: sheet, widths: make(map[int]int)}
}

func (w *sheetWriter) set(col, row int, value any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		w.err = fmt.Errorf("write %s!%s: %w", w.sheet, cell, err)
		return
	}
	w.track(col, fmt.Sprint(value))
}

func (w *sheetWriter) formula(col, row int, formula string) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellFormula(w.sheet, cell, formula); err != nil {
		w.err = fmt.Errorf("write formula %s!%s: %w", w.sheet, cell, err)
		return
	}
	w.track(col, formula)
}

func (w *sheetWriter) track(col int, s string) {
	if len(s) > w.widths[col] {
		w.widths[col] = len(s)
	}
}

// applyWidths sizes every written column to its longest stringified
// cell plus padding, clamped to the format's 255-character maximum
// (long SUMIFS formulas can exceed it).
func (w *sheetWriter) applyWidths() error {
	if w.err != nil {
		return w.err
	}
	for col, width := range w.widths {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		applied := float64(width + 2)
		if applied > excelize.MaxColumnWidth {
			applied = excelize.MaxColumnWidth
		}
		if err := w.f.SetColWidth(w.sheet, letter, letter, applied); err != nil {
			return fmt.Errorf("set width %s!%s: %w", w.sheet, letter, err)
		}
	}
	return nil
}
