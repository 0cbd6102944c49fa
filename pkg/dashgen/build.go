package dashgen

import (
	"log/slog"

	"github.com/avandrel/dashgen/pkg/dashgen/loader"
	"github.com/avandrel/dashgen/pkg/dashgen/models"
	"github.com/avandrel/dashgen/pkg/dashgen/report"
)

// TotalExpendituresColumn is the derived column appended to the research
// table before it is written out.
const TotalExpendituresColumn = "Total Research Expenditures"

// Inputs holds the three source paths and the output path.
type Inputs struct {
	FacultyPath  string
	DegreesPath  string
	ResearchPath string
	OutputPath   string
}

// Build generates the dashboard workbook: loads the three sources,
// appends the research expenditure total, writes the data and lookup
// sheets, builds both dashboards, and saves the output exactly once.
// Any failure aborts the run; no partial output is promised.
func Build(logger *slog.Logger, in Inputs, cfg Config) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	faculty, err := loader.Load(in.FacultyPath)
	if err != nil {
		return newBuildError("load", in.FacultyPath, err)
	}
	degrees, err := loader.Load(in.DegreesPath)
	if err != nil {
		return newBuildError("load", in.DegreesPath, err)
	}
	research, err := loader.Load(in.ResearchPath)
	if err != nil {
		return newBuildError("load", in.ResearchPath, err)
	}
	logger.Info("sources loaded",
		slog.Int("faculty_rows", len(faculty.Records)),
		slog.Int("degrees_rows", len(degrees.Records)),
		slog.Int("research_rows", len(research.Records)))

	if err := research.SumColumns(cfg.Research.ValueColumns, TotalExpendituresColumn); err != nil {
		return newBuildError("aggregate", in.ResearchPath, err)
	}

	wb, err := report.New()
	if err != nil {
		return newBuildError("build", "workbook", err)
	}
	defer wb.Close()
	f := wb.File()

	for _, src := range []struct {
		sheet string
		table *models.Table
	}{
		{report.SheetFaculty, faculty},
		{report.SheetDegrees, degrees},
		{report.SheetResearch, research},
	} {
		if err := report.WriteTable(f, src.sheet, src.table); err != nil {
			return newBuildError("build", src.sheet, err)
		}
	}

	institutions, err := faculty.UniqueStrings(cfg.Faculty.InstitutionColumn)
	if err != nil {
		return newBuildError("resolve", report.SheetLookups, err)
	}
	if err := report.WriteLookups(f, institutions); err != nil {
		return newBuildError("build", report.SheetLookups, err)
	}
	logger.Info("lookup sheet written", slog.Int("institutions", len(institutions)))

	facultyRefs, err := sourceRefs(faculty, report.SheetFaculty, cfg.Faculty)
	if err != nil {
		return newBuildError("resolve", report.SheetFaculty, err)
	}
	degreesRefs, err := sourceRefs(degrees, report.SheetDegrees, cfg.Degrees)
	if err != nil {
		return newBuildError("resolve", report.SheetDegrees, err)
	}
	researchRefs, err := sourceRefs(research, report.SheetResearch, cfg.Research)
	if err != nil {
		return newBuildError("resolve", report.SheetResearch, err)
	}

	chartWidth := report.CmToPixels(cfg.Chart.WidthCm)
	chartHeight := report.CmToPixels(cfg.Chart.HeightCm)

	academic := report.DashboardParams{
		Sheet:            report.SheetAcademicDashboard,
		Title:            "Academic Metrics Dashboard",
		ChartTitle:       "Faculty to Degree Ratios by Institution",
		Slots:            cfg.ComparisonSlots,
		InstitutionCount: len(institutions),
		Metrics:          report.AcademicMetrics(facultyRefs, degreesRefs),
		ChartSeries:      []int{3, 4, 5},
		ChartWidth:       chartWidth,
		ChartHeight:      chartHeight,
	}
	if err := report.BuildDashboard(f, academic); err != nil {
		return newBuildError("build", report.SheetAcademicDashboard, err)
	}

	researchDash := report.DashboardParams{
		Sheet:            report.SheetResearchDashboard,
		Title:            "Research Metrics Dashboard",
		ChartTitle:       "Research Dollars per Faculty by Institution",
		Slots:            cfg.ComparisonSlots,
		InstitutionCount: len(institutions),
		Metrics:          report.ResearchMetrics(facultyRefs, researchRefs),
		ChartSeries:      []int{4},
		ChartWidth:       chartWidth,
		ChartHeight:      chartHeight,
	}
	if err := report.BuildDashboard(f, researchDash); err != nil {
		return newBuildError("build", report.SheetResearchDashboard, err)
	}

	if err := wb.Save(in.OutputPath); err != nil {
		return newBuildError("save", in.OutputPath, err)
	}
	logger.Info("workbook written", slog.String("path", in.OutputPath))
	return nil
}

// sourceRefs resolves a schema's named columns against a loaded table
// into sheet-qualified column references for formula construction.
func sourceRefs(t *models.Table, sheet string, schema SourceSchema) (report.SourceRefs, error) {
	name, err := t.ColumnLetter(schema.InstitutionColumn)
	if err != nil {
		return report.SourceRefs{}, err
	}
	refs := report.SourceRefs{
		Name:   report.ColumnRef{Sheet: sheet, Col: name},
		Values: make([]report.ColumnRef, len(schema.ValueColumns)),
	}
	for i, col := range schema.ValueColumns {
		letter, err := t.ColumnLetter(col)
		if err != nil {
			return report.SourceRefs{}, err
		}
		refs.Values[i] = report.ColumnRef{Sheet: sheet, Col: letter}
	}
	return refs, nil
}
