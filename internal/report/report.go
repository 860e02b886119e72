// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles student summaries into the output table and
// serializes it. The table is the pipeline's sole artifact; nothing
// upstream knows how it is written.
package report

import (
	"fmt"

	"github.com/meshintel/transcript-engine/pkg/types"
)

// identityColumns lead every report, before the per-subject blocks.
var identityColumns = []string{
	"Name", "Student_ID", "Plan", "Sex", "Address1", "Address2", "Address3",
}

// Table is an ordered grid of typed cells. A nil cell renders blank (an
// undefined GPA is blank, never zero).
type Table struct {
	Columns []string
	Rows    [][]any
}

// Assemble builds the output table: identity columns first, then one
// five-column block per tracked subject in declaration order, then one
// grade column per course seen across all students, in natural order
// ("MTH 3" before "MTH 15"). The ^ marker tags columns derived from the
// upper-level filter. Row order is student first-seen order.
func Assemble(summaries []*types.StudentSummary, cfg types.Config) *Table {
	t := &Table{}
	t.Columns = append(t.Columns, identityColumns...)
	for _, subj := range cfg.Subjects {
		t.Columns = append(t.Columns,
			fmt.Sprintf("Num %s courses", subj),
			fmt.Sprintf("Num %s^ courses", subj),
			fmt.Sprintf("%s^ GPA", subj),
			fmt.Sprintf("Num %s^ creds", subj),
			fmt.Sprintf("Num %s^ now", subj),
		)
	}

	courses := courseColumns(summaries)
	t.Columns = append(t.Columns, courses...)

	for _, s := range summaries {
		row := []any{
			s.Name, s.StudentID, s.Plan, s.Sex,
			s.Address[0], s.Address[1], s.Address[2],
		}
		for _, subj := range cfg.Subjects {
			agg := s.Subjects[subj]
			var gpa any
			if v, ok := agg.GPA(); ok {
				gpa = v
			}
			row = append(row,
				agg.Completed, agg.UpperCompleted, gpa,
				agg.UpperCredits, agg.InProgress)
		}
		for _, course := range courses {
			if grade, ok := s.Grades[course]; ok {
				row = append(row, grade)
			} else {
				row = append(row, nil)
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// courseColumns returns every course identifier appearing in any summary,
// naturally sorted.
func courseColumns(summaries []*types.StudentSummary) []string {
	seen := make(map[string]bool)
	var courses []string
	for _, s := range summaries {
		for course := range s.Grades {
			if !seen[course] {
				seen[course] = true
				courses = append(courses, course)
			}
		}
	}
	naturalSort(courses)
	return courses
}
