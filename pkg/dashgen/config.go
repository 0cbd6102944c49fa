// Package dashgen generates an academic and research dashboard workbook
// from faculty, degrees, and research expenditure datasets.
package dashgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceSchema names the load-bearing columns of one source table.
// Formulas are bound to these names and resolved to sheet positions at
// generation time.
type SourceSchema struct {
	// InstitutionColumn is the column holding institution names.
	InstitutionColumn string `yaml:"institution_column"`
	// ValueColumns are the numeric columns aggregated by the dashboards.
	ValueColumns []string `yaml:"value_columns"`
}

// ChartConfig sets embedded chart geometry in centimetres.
type ChartConfig struct {
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

// Config configures report generation.
type Config struct {
	// ComparisonSlots is the number of comparison-institution selectors
	// on each dashboard.
	ComparisonSlots int          `yaml:"comparison_slots"`
	Faculty         SourceSchema `yaml:"faculty"`
	Degrees         SourceSchema `yaml:"degrees"`
	Research        SourceSchema `yaml:"research"`
	Chart           ChartConfig  `yaml:"chart"`
}

// DefaultConfig returns the default report configuration.
func DefaultConfig() Config {
	return Config{
		ComparisonSlots: 5,
		Faculty: SourceSchema{
			InstitutionColumn: "School Name",
			ValueColumns: []string{
				"Bachelors Faculty Sum",
				"Masters Faculty Sum",
				"Doctoral Faculty Sum",
			},
		},
		Degrees: SourceSchema{
			InstitutionColumn: "Institution Name",
			ValueColumns: []string{
				"Bachelors Degrees Sum",
				"Masters Degrees Sum",
				"Doctoral Degrees Sum",
			},
		},
		Research: SourceSchema{
			InstitutionColumn: "Institution Name",
			ValueColumns: []string{
				"Federal Fund Sum",
				"Foreign Fund Sum",
				"Individual Fund Sum",
				"Industry Fund Sum",
				"Local Fund Sum",
				"Non-Profit Fund Sum",
				"Research Expenditures State Fund Sum",
			},
		},
		Chart: ChartConfig{WidthCm: 25, HeightCm: 15},
	}
}

// LoadConfig reads a YAML config file layered over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports configuration problems before any file is touched.
func (c Config) Validate() error {
	if c.ComparisonSlots < 1 {
		return fmt.Errorf("%w: comparison_slots must be at least 1, got %d",
			ErrInvalidConfig, c.ComparisonSlots)
	}
	for _, src := range []struct {
		name   string
		schema SourceSchema
		values int
	}{
		{"faculty", c.Faculty, 3},
		{"degrees", c.Degrees, 3},
		{"research", c.Research, 7},
	} {
		if src.schema.InstitutionColumn == "" {
			return fmt.Errorf("%w: %s institution_column is empty", ErrInvalidConfig, src.name)
		}
		if len(src.schema.ValueColumns) != src.values {
			return fmt.Errorf("%w: %s expects %d value_columns, got %d",
				ErrInvalidConfig, src.name, src.values, len(src.schema.ValueColumns))
		}
		for _, col := range src.schema.ValueColumns {
			if col == "" {
				return fmt.Errorf("%w: %s has an empty value column name", ErrInvalidConfig, src.name)
			}
		}
	}
	if c.Chart.WidthCm <= 0 || c.Chart.HeightCm <= 0 {
		return fmt.Errorf("%w: chart dimensions must be positive", ErrInvalidConfig)
	}
	return nil
}
