// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared across the transcript pipeline:
// run configuration, course records, and per-student summaries.
package types

// DefaultOutputFile is the spreadsheet filename used when the caller does
// not override it.
const DefaultOutputFile = "TranscriptSummary.xlsx"

// Config holds the settings for one analysis run. It is constructed once
// (from flags, a config file, or defaults), and is immutable for the
// duration of the run.
type Config struct {
	// CurrentTerm is the semester code of the term in progress,
	// e.g. "S22", "F20", or "Sum19". Ungraded courses in this term
	// count as in progress.
	CurrentTerm string `json:"current_term" yaml:"current_term"`

	// Subjects lists the tracked subject codes, e.g. ["MTH", "PHY"].
	// Declaration order determines column order in the output table.
	Subjects []string `json:"subjects" yaml:"subjects"`

	// IgnoreCourses maps a subject code to the course identifiers
	// (e.g. "MTH 15") excluded from upper-level classification even when
	// their subject and number would otherwise qualify.
	IgnoreCourses map[string][]string `json:"ignore_courses" yaml:"ignore_courses"`

	// UpperLevelMin is the minimum numeric course level counted as
	// upper-level. Zero means every non-ignored course in a tracked
	// subject qualifies, leaving the ignore list in charge.
	UpperLevelMin int `json:"upper_level_min" yaml:"upper_level_min"`

	// InDir is the directory input PDFs are read from.
	InDir string `json:"in_dir" yaml:"in_dir"`

	// OutDir is the directory output spreadsheets are written to.
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// DefaultConfig returns the configuration used when nothing else is
// provided: the LIU Post math honor society selection settings.
func DefaultConfig() Config {
	return Config{
		CurrentTerm: "S22",
		Subjects:    []string{"MTH", "PHY"},
		IgnoreCourses: map[string][]string{
			"MTH": {"MTH 1", "MTH 3", "MTH 4", "MTH 5", "MTH 6",
				"MTH 15", "MTH 16", "MTH 19", "MTH 90"},
			"PHY": {"PHY 3", "PHY 4"},
		},
		InDir:  "data",
		OutDir: "data",
	}
}

// TracksSubject reports whether subject is one of the tracked subject
// codes. Matching is exact and case-sensitive.
func (c Config) TracksSubject(subject string) bool {
	for _, s := range c.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Ignored reports whether the course identifier (e.g. "MTH 15") is on the
// ignore list for its subject.
func (c Config) Ignored(subject, course string) bool {
	for _, ig := range c.IgnoreCourses[subject] {
		if ig == course {
			return true
		}
	}
	return false
}
