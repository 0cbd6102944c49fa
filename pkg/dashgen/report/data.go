package report

import (
	"fmt"

	"github.com/avandrel/dashgen/pkg/dashgen/models"
	"github.com/xuri/excelize/v2"
)

// WriteTable copies a source table verbatim into the named sheet: the
// header row at row 1, records after it, row and column order preserved.
func WriteTable(f *excelize.File, sheet string, t *models.Table) error {
	for c, header := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}

	for r, rec := range t.Records {
		for c, value := range rec {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	return nil
}
