// Package main provides the CLI entry point for dashgen.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/avandrel/dashgen/pkg/dashgen"
	"github.com/spf13/cobra"
)

var (
	facultyPath  string
	degreesPath  string
	researchPath string
	outputPath   string
	configPath   string
	comparisons  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashgen",
		Short: "Generate an academic and research dashboard workbook",
		Long: `dashgen reads faculty, degrees, and research expenditure xlsx files
and produces a single workbook with raw data sheets, an institution
lookup, and two self-updating dashboard sheets.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&facultyPath, "faculty", "Tenure Track Total Faculty.xlsx", "Faculty counts xlsx file")
	rootCmd.Flags().StringVar(&degreesPath, "degrees", "Total Degrees Awarded.xlsx", "Degrees awarded xlsx file")
	rootCmd.Flags().StringVar(&researchPath, "research", "Research Expenditures 2023.xlsx", "Research expenditures xlsx file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "Academic_and_Research_Dashboard.xlsx", "Output workbook path")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML report config")
	rootCmd.Flags().IntVar(&comparisons, "comparisons", 0, "Comparison-institution slots per dashboard (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := dashgen.DefaultConfig()
	if configPath != "" {
		loaded, err := dashgen.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("config failed: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("comparisons") {
		cfg.ComparisonSlots = comparisons
	}

	for _, path := range []string{facultyPath, degreesPath, researchPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	in := dashgen.Inputs{
		FacultyPath:  facultyPath,
		DegreesPath:  degreesPath,
		ResearchPath: researchPath,
		OutputPath:   outputPath,
	}
	if err := dashgen.Build(logger, in, cfg); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}
