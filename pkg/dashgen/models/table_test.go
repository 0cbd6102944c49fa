package models

import (
	"errors"
	"testing"
)

func TestColumnIndex(t *testing.T) {
	table := &Table{Headers: []string{"School Name", "Federal Fund Sum", "Local Fund Sum"}}

	tests := []struct {
		name     string
		expected int
		wantErr  bool
	}{
		{"School Name", 1, false},
		{"Federal Fund Sum", 2, false},
		{"Local Fund Sum", 3, false},
		{"Missing Column", 0, true},
	}

	for _, tt := range tests {
		idx, err := table.ColumnIndex(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrColumnNotFound) {
				t.Errorf("ColumnIndex(%q) error = %v, want ErrColumnNotFound", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColumnIndex(%q) unexpected error: %v", tt.name, err)
			continue
		}
		if idx != tt.expected {
			t.Errorf("ColumnIndex(%q) = %d, expected %d", tt.name, idx, tt.expected)
		}
	}
}

func TestColumnLetter(t *testing.T) {
	headers := make([]string, 28)
	headers[0] = "First"
	headers[3] = "Fourth"
	headers[27] = "TwentyEighth"
	table := &Table{Headers: headers}

	tests := []struct {
		name     string
		expected string
	}{
		{"First", "A"},
		{"Fourth", "D"},
		{"TwentyEighth", "AB"},
	}

	for _, tt := range tests {
		letter, err := table.ColumnLetter(tt.name)
		if err != nil {
			t.Errorf("ColumnLetter(%q) unexpected error: %v", tt.name, err)
			continue
		}
		if letter != tt.expected {
			t.Errorf("ColumnLetter(%q) = %q, expected %q", tt.name, letter, tt.expected)
		}
	}
}

func TestSumColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"Institution Name", "Federal Fund Sum", "Industry Fund Sum", "Local Fund Sum"},
		Records: [][]any{
			{"A", int64(100), 25.5, int64(4)},
			{"B", int64(0), int64(0), int64(0)},
			{"C", int64(7)}, // short row, trailing funds absent
		},
	}

	if err := table.SumColumns([]string{"Federal Fund Sum", "Industry Fund Sum", "Local Fund Sum"}, "Total"); err != nil {
		t.Fatalf("SumColumns failed: %v", err)
	}

	if got := table.Headers[len(table.Headers)-1]; got != "Total" {
		t.Errorf("appended header = %q, expected %q", got, "Total")
	}

	expected := []float64{129.5, 0, 7}
	for i, want := range expected {
		rec := table.Records[i]
		got, ok := rec[len(rec)-1].(float64)
		if !ok {
			t.Fatalf("row %d: total is %T, expected float64", i, rec[len(rec)-1])
		}
		if got != want {
			t.Errorf("row %d: total = %v, expected %v", i, got, want)
		}
	}

	// One-shot contract: a second append must be rejected.
	if err := table.SumColumns([]string{"Federal Fund Sum"}, "Total"); err == nil {
		t.Error("expected error on duplicate append, got nil")
	}
}

func TestSumColumnsNonNumeric(t *testing.T) {
	table := &Table{
		Headers: []string{"Institution Name", "Federal Fund Sum"},
		Records: [][]any{
			{"A", "not a number"},
		},
	}

	if err := table.SumColumns([]string{"Federal Fund Sum"}, "Total"); err == nil {
		t.Error("expected error for non-numeric fund value, got nil")
	}
}

func TestUniqueStrings(t *testing.T) {
	table := &Table{
		Headers: []string{"School Name", "Count"},
		Records: [][]any{
			{"Zeta University", int64(1)},
			{"Alpha College", int64(2)},
			{"Zeta University", int64(3)},
			{"", int64(4)},
			{"alpha college", int64(5)},
		},
	}

	got, err := table.UniqueStrings("School Name")
	if err != nil {
		t.Fatalf("UniqueStrings failed: %v", err)
	}

	// Sorted ascending, case-sensitive, deduplicated, empties dropped.
	expected := []string{"Alpha College", "Zeta University", "alpha college"}
	if len(got) != len(expected) {
		t.Fatalf("got %d institutions, expected %d: %v", len(got), len(expected), got)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("institutions[%d] = %q, expected %q", i, got[i], want)
		}
	}

	if _, err := table.UniqueStrings("Missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("UniqueStrings(Missing) error = %v, want ErrColumnNotFound", err)
	}
}
