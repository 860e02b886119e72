// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the stages into the single-pass run:
// scrape → extract → aggregate → assemble → write. This is the
// programmatic entry point; the CLI is a thin wrapper around it.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/meshintel/transcript-engine/internal/aggregate"
	"github.com/meshintel/transcript-engine/internal/extract"
	"github.com/meshintel/transcript-engine/internal/report"
	"github.com/meshintel/transcript-engine/internal/scrape"
	"github.com/meshintel/transcript-engine/pkg/types"
)

// Pipeline runs transcript analysis with a fixed configuration.
type Pipeline struct {
	Config types.Config

	// Source supplies document text. Defaults to the PDF reader; tests
	// substitute literal text.
	Source scrape.Source

	// RecordsFile, when set, receives a YAML dump of every parsed
	// course record before aggregation.
	RecordsFile string
}

// New returns a pipeline reading real PDFs with the given configuration.
func New(cfg types.Config) *Pipeline {
	return &Pipeline{Config: cfg, Source: scrape.PDFSource{}}
}

// Result holds everything one run produced. Table is the output artifact;
// Summaries and Records expose the intermediate forms for callers that
// want them (the roster store, the records dump).
type Result struct {
	Table     *report.Table
	Summaries []*types.StudentSummary
	Records   []types.CourseRecord
}

// Analyze processes one transcript PDF. inputFile is resolved against
// Config.InDir, outputFile against Config.OutDir; an empty outputFile
// skips spreadsheet writing (programmatic use). When writing fails the
// assembled result is still returned alongside the error, so a caller can
// salvage the in-memory table.
func (p *Pipeline) Analyze(inputFile, outputFile string, w io.Writer) (*Result, error) {
	inPath := filepath.Join(p.Config.InDir, inputFile)
	if _, err := os.Stat(inPath); err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}

	text, err := p.Source.Text(inPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inPath, err)
	}

	blocks := slices.Collect(extract.Blocks(text))

	var records []types.CourseRecord
	for _, b := range blocks {
		records = append(records, b.Records...)
	}
	if p.RecordsFile != "" {
		if err := report.WriteRecordsYAML(records, p.RecordsFile); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "wrote %d records to %s\n", len(records), p.RecordsFile)
	}

	summaries, err := aggregate.Summarize(slices.Values(blocks), p.Config)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s: %w", inputFile, err)
	}
	fmt.Fprintf(w, "parsed %d students, %d course records\n", len(summaries), len(records))

	result := &Result{
		Table:     report.Assemble(summaries, p.Config),
		Summaries: summaries,
		Records:   records,
	}

	if outputFile != "" {
		outPath := filepath.Join(p.Config.OutDir, outputFile)
		if err := report.WriteXLSX(result.Table, outPath); err != nil {
			return result, fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(w, "wrote %s\n", outPath)
	}

	return result, nil
}
