package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// applyStyles applies the dashboard cell styling: bold title, bold
// metrics-section label, and thin borders with centered alignment across
// the metrics table (header row through last data row).
func applyStyles(f *excelize.File, sheet string, labelRow, headerRow, lastDataRow, cols int) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	metricsStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	label := fmt.Sprintf("A%d", labelRow)
	if err := f.SetCellStyle(sheet, label, label, sectionStyle); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	topLeft := fmt.Sprintf("A%d", headerRow)
	bottomRight := fmt.Sprintf("%s%d", lastCol, lastDataRow)
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, metricsStyle); err != nil {
		return fmt.Errorf("style %s!%s:%s: %w", sheet, topLeft, bottomRight, err)
	}
	return nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
