package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnRefRange(t *testing.T) {
	tests := []struct {
		name     string
		ref      ColumnRef
		expected string
	}{
		{"spaced sheet name", ColumnRef{Sheet: "Faculty Data", Col: "D"}, "'Faculty Data'!D:D"},
		{"plain sheet name", ColumnRef{Sheet: "Lookups", Col: "A"}, "Lookups!A:A"},
		{"double letter column", ColumnRef{Sheet: "Research Data", Col: "AB"}, "'Research Data'!AB:AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Range())
		})
	}
}

func TestSumIfs(t *testing.T) {
	got := SumIfs(
		ColumnRef{Sheet: "Faculty Data", Col: "D"},
		ColumnRef{Sheet: "Faculty Data", Col: "B"},
		"$A14",
	)
	assert.Equal(t, "SUMIFS('Faculty Data'!D:D,'Faculty Data'!B:B,$A14)", got)
}

func TestSumAcross(t *testing.T) {
	crit := ColumnRef{Sheet: "Faculty Data", Col: "B"}
	cols := []ColumnRef{
		{Sheet: "Faculty Data", Col: "D"},
		{Sheet: "Faculty Data", Col: "E"},
		{Sheet: "Faculty Data", Col: "F"},
	}

	got := SumAcross(cols, crit, "$A14")
	want := "SUMIFS('Faculty Data'!D:D,'Faculty Data'!B:B,$A14) + " +
		"SUMIFS('Faculty Data'!E:E,'Faculty Data'!B:B,$A14) + " +
		"SUMIFS('Faculty Data'!F:F,'Faculty Data'!B:B,$A14)"
	assert.Equal(t, want, got)
}

func TestGuardedRatio(t *testing.T) {
	assert.Equal(t, "IFERROR(C14/B14,0)", GuardedRatio("C14", "B14"))
}

func TestFormulaDeterminism(t *testing.T) {
	// Same coordinates must always produce the same text.
	crit := ColumnRef{Sheet: "Degrees Data", Col: "C"}
	col := ColumnRef{Sheet: "Degrees Data", Col: "E"}
	first := GuardedRatio("B15", SumIfs(col, crit, "$A15"))
	second := GuardedRatio("B15", SumIfs(col, crit, "$A15"))
	assert.Equal(t, first, second)
	assert.Equal(t, "IFERROR(B15/SUMIFS('Degrees Data'!E:E,'Degrees Data'!C:C,$A15),0)", first)
}

func TestAcademicMetrics(t *testing.T) {
	faculty := SourceRefs{
		Name: ColumnRef{Sheet: SheetFaculty, Col: "B"},
		Values: []ColumnRef{
			{Sheet: SheetFaculty, Col: "D"},
			{Sheet: SheetFaculty, Col: "E"},
			{Sheet: SheetFaculty, Col: "F"},
		},
	}
	degrees := SourceRefs{
		Name: ColumnRef{Sheet: SheetDegrees, Col: "C"},
		Values: []ColumnRef{
			{Sheet: SheetDegrees, Col: "E"},
			{Sheet: SheetDegrees, Col: "F"},
			{Sheet: SheetDegrees, Col: "G"},
		},
	}

	metrics := AcademicMetrics(faculty, degrees)
	assert.Len(t, metrics, 4)
	assert.Equal(t, "Total Faculty", metrics[0].Header)
	assert.Equal(t, "Faculty:Bachelors", metrics[1].Header)
	assert.Equal(t, "Faculty:Masters", metrics[2].Header)
	assert.Equal(t, "Faculty:Doctoral", metrics[3].Header)

	assert.Equal(t,
		"SUMIFS('Faculty Data'!D:D,'Faculty Data'!B:B,$A14) + "+
			"SUMIFS('Faculty Data'!E:E,'Faculty Data'!B:B,$A14) + "+
			"SUMIFS('Faculty Data'!F:F,'Faculty Data'!B:B,$A14)",
		metrics[0].Formula(14))
	assert.Equal(t,
		"IFERROR(B14/SUMIFS('Degrees Data'!E:E,'Degrees Data'!C:C,$A14),0)",
		metrics[1].Formula(14))
	assert.Equal(t,
		"IFERROR(B19/SUMIFS('Degrees Data'!G:G,'Degrees Data'!C:C,$A19),0)",
		metrics[3].Formula(19))
}

func TestResearchMetrics(t *testing.T) {
	faculty := SourceRefs{
		Name: ColumnRef{Sheet: SheetFaculty, Col: "B"},
		Values: []ColumnRef{
			{Sheet: SheetFaculty, Col: "D"},
			{Sheet: SheetFaculty, Col: "E"},
			{Sheet: SheetFaculty, Col: "F"},
		},
	}
	research := SourceRefs{
		Name: ColumnRef{Sheet: SheetResearch, Col: "C"},
		Values: []ColumnRef{
			{Sheet: SheetResearch, Col: "D"},
			{Sheet: SheetResearch, Col: "E"},
			{Sheet: SheetResearch, Col: "F"},
			{Sheet: SheetResearch, Col: "G"},
			{Sheet: SheetResearch, Col: "H"},
			{Sheet: SheetResearch, Col: "I"},
			{Sheet: SheetResearch, Col: "J"},
		},
	}

	metrics := ResearchMetrics(faculty, research)
	assert.Len(t, metrics, 3)
	assert.Equal(t, "Total Research Expenditures", metrics[1].Header)

	assert.Equal(t,
		"SUMIFS('Research Data'!D:D,'Research Data'!C:C,$A14) + "+
			"SUMIFS('Research Data'!E:E,'Research Data'!C:C,$A14) + "+
			"SUMIFS('Research Data'!F:F,'Research Data'!C:C,$A14) + "+
			"SUMIFS('Research Data'!G:G,'Research Data'!C:C,$A14) + "+
			"SUMIFS('Research Data'!H:H,'Research Data'!C:C,$A14) + "+
			"SUMIFS('Research Data'!I:I,'Research Data'!C:C,$A14) + "+
			"SUMIFS('Research Data'!J:J,'Research Data'!C:C,$A14)",
		metrics[1].Formula(14))
	assert.Equal(t, "IFERROR(C14/B14,0)", metrics[2].Formula(14))
}
