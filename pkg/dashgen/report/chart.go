package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// chartAnchor is the fixed top-left cell the embedded chart hangs from.
const chartAnchor = "G2"

// PixelsPerCm is the pixel density of chart geometry at 96 DPI.
// 1 inch = 2.54 cm, 1 inch = 96 pixels at 96 DPI.
const PixelsPerCm = 96.0 / 2.54

// CmToPixels converts chart dimensions from centimetres to pixels at
// 96 DPI. Chart geometry is configured in centimetres; excelize anchors
// charts in pixels.
func CmToPixels(cm float64) uint {
	return uint(math.Round(cm * PixelsPerCm))
}

// addBarChart embeds a clustered column chart plotting the configured
// metric columns against the institution-name column of the metrics
// table. Series names reference the header row, so the legend follows
// the generated headers.
func addBarChart(f *excelize.File, p DashboardParams, headerRow, firstDataRow, lastDataRow int) error {
	sheet := quoteSheet(p.Sheet)
	categories := fmt.Sprintf("%s!$A$%d:$A$%d", sheet, firstDataRow, lastDataRow)

	series := make([]excelize.ChartSeries, 0, len(p.ChartSeries))
	for _, col := range p.ChartSeries {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$%d", sheet, letter, headerRow),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$%s$%d:$%s$%d", sheet, letter, firstDataRow, letter, lastDataRow),
		})
	}

	chart := &excelize.Chart{
		Type:   excelize.Col,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: p.ChartTitle}},
		Dimension: excelize.ChartDimension{
			Width:  p.ChartWidth,
			Height: p.ChartHeight,
		},
	}
	if err := f.AddChart(p.Sheet, chartAnchor, chart); err != nil {
		return fmt.Errorf("add chart on %s: %w", p.Sheet, err)
	}
	return nil
}
