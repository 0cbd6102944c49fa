// Package report builds the output dashboard workbook: data sheets,
// the institution lookup sheet, and the two dashboard sheets with
// live formulas, validation, styling, and charts.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Output sheet names, in creation order.
const (
	SheetFaculty           = "Faculty Data"
	SheetDegrees           = "Degrees Data"
	SheetResearch          = "Research Data"
	SheetLookups           = "Lookups"
	SheetAcademicDashboard = "Academic Dashboard"
	SheetResearchDashboard = "Research Dashboard"
)

// Workbook wraps the output file. It is populated fully in memory by the
// builders and persisted exactly once by Save.
type Workbook struct {
	f *excelize.File
}

// New creates an output workbook containing the six report sheets in
// their fixed order.
func New() (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetFaculty); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{
		SheetDegrees,
		SheetResearch,
		SheetLookups,
		SheetAcademicDashboard,
		SheetResearchDashboard,
	} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}
	return &Workbook{f: f}, nil
}

// File exposes the underlying excelize file for the sheet builders.
func (w *Workbook) File() *excelize.File {
	return w.f
}

// Save writes the workbook to path.
func (w *Workbook) Save(path string) error {
	return w.f.SaveAs(path)
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.f.Close()
}
