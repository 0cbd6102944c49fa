package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// lookupLabel is the header written above the institution list.
const lookupLabel = "Valid Institutions"

// WriteLookups writes the sorted institution list into the Lookups
// sheet: the label at A1, values from A2 down. The list is the
// validation source for every dashboard selector cell.
func WriteLookups(f *excelize.File, institutions []string) error {
	if err := f.SetCellValue(SheetLookups, "A1", lookupLabel); err != nil {
		return err
	}
	for i, inst := range institutions {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue(SheetLookups, cell, inst); err != nil {
			return fmt.Errorf("write %s!%s: %w", SheetLookups, cell, err)
		}
	}
	return nil
}

// LookupRange returns the absolute reference covering count institution
// values on the Lookups sheet, suitable as a list-validation source.
func LookupRange(count int) string {
	return fmt.Sprintf("%s!$A$2:$A$%d", SheetLookups, count+1)
}
