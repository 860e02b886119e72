// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/meshintel/transcript-engine/internal/pipeline"
	"github.com/meshintel/transcript-engine/internal/roster"
	"github.com/meshintel/transcript-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.pdf> [output.xlsx]",
	Short: "Summarize one transcript PDF into a spreadsheet",
	Long: `Analyze parses every student block in the input PDF, aggregates their
performance in the tracked subjects, and writes the summary spreadsheet
(default "` + types.DefaultOutputFile + `"). Input is resolved against the
input directory, output against the output directory.

The run fails if no student headers are recognized; a malformed course line
only skips that line.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("term", "", "current semester code, e.g. S22 (ungraded courses this term count as in progress)")
	analyzeCmd.Flags().StringSlice("subjects", nil, "tracked subject codes, e.g. MTH,PHY")
	analyzeCmd.Flags().Int("upper-min", 0, "minimum numeric course level counted as upper-level (0: ignore list only)")
	analyzeCmd.Flags().String("in-dir", "", "directory input PDFs are read from")
	analyzeCmd.Flags().String("out-dir", "", "directory the spreadsheet is written to")
	analyzeCmd.Flags().String("records", "", "also dump parsed course records to this YAML file")
	analyzeCmd.Flags().Bool("no-roster", false, "skip recording the run in the roster database")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := analyzeConfig(cmd)

	outputFile := types.DefaultOutputFile
	if len(args) > 1 {
		outputFile = args[1]
	}

	p := pipeline.New(cfg)
	p.RecordsFile, _ = cmd.Flags().GetString("records")

	fmt.Println("Analyzing transcripts...")
	result, err := p.Analyze(args[0], outputFile, os.Stdout)
	if err != nil {
		return err
	}

	if noRoster, _ := cmd.Flags().GetBool("no-roster"); !noRoster {
		if err := recordRun(cfg, args[0], result); err != nil {
			// History is a convenience; the report already exists.
			fmt.Fprintf(os.Stderr, "warning: roster not updated: %v\n", err)
		}
	}

	fmt.Println("All done!")
	return nil
}

// analyzeConfig layers flag overrides on top of the file/env configuration.
func analyzeConfig(cmd *cobra.Command) types.Config {
	cfg := loadConfig()
	if term, _ := cmd.Flags().GetString("term"); term != "" {
		cfg.CurrentTerm = term
	}
	if subjects, _ := cmd.Flags().GetStringSlice("subjects"); len(subjects) > 0 {
		cfg.Subjects = subjects
	}
	if min, _ := cmd.Flags().GetInt("upper-min"); min > 0 {
		cfg.UpperLevelMin = min
	}
	if dir, _ := cmd.Flags().GetString("in-dir"); dir != "" {
		cfg.InDir = dir
	}
	if dir, _ := cmd.Flags().GetString("out-dir"); dir != "" {
		cfg.OutDir = dir
	}
	return cfg
}

func recordRun(cfg types.Config, inputFile string, result *pipeline.Result) error {
	store, err := roster.Open(filepath.Join(cfg.OutDir, rosterDBFile))
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.RecordRun(context.Background(), inputFile, cfg, result.Summaries)
	if err != nil {
		return err
	}
	fmt.Printf("recorded run %d in roster\n", runID)
	return nil
}
