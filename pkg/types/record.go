// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
)

// CourseRecord is one course line recovered from a transcript, tagged with
// the student it belongs to. Records are immutable once produced by the
// extractor.
type CourseRecord struct {
	// StudentID identifies the owning student block.
	StudentID string `json:"student_id" yaml:"student_id"`

	// StudentName is the display name from the owning block's header.
	StudentName string `json:"student_name" yaml:"student_name"`

	// Subject is the department code, e.g. "MTH". Case-sensitive.
	Subject string `json:"subject" yaml:"subject"`

	// Number is the course number as printed. Usually numeric, but the
	// catalog also has suffixed numbers ("41A") and the non-numeric "NE".
	Number string `json:"number" yaml:"number"`

	// Title is the course title as printed, unnormalized.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Credits is the attempted-credit figure from the course line.
	Credits float64 `json:"credits" yaml:"credits"`

	// Grade is the posted grade symbol ("A-", "W", ...). Empty means no
	// grade has been posted yet.
	Grade string `json:"grade,omitempty" yaml:"grade,omitempty"`

	// Term is the abbreviated semester code the course was taken in,
	// e.g. "F20" or "S21".
	Term string `json:"term" yaml:"term"`
}

// Course returns the course identifier, e.g. "MTH 301". This is the key
// used by the ignore list and the per-course report columns.
func (r CourseRecord) Course() string {
	return fmt.Sprintf("%s %s", r.Subject, r.Number)
}

// Level returns the numeric course level and true, or 0 and false when the
// number has no leading digits (e.g. "NE"). A suffixed number such as
// "41A" has level 41.
func (r CourseRecord) Level() (int, bool) {
	end := 0
	for end < len(r.Number) && r.Number[end] >= '0' && r.Number[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(r.Number[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// GradePoints maps letter grades to grade-point values. Symbols absent
// from this table (W, P, S, U, I, TR, ...) are non-numeric: they mark a
// completed course but never enter a grade-point average.
var GradePoints = map[string]float64{
	"A": 4.0, "A-": 3.667, "B+": 3.333, "B": 3.0, "B-": 2.667,
	"C+": 2.333, "C": 2.0, "C-": 1.667, "D": 1.0, "F": 0.0,
}

// NumericGrade reports whether the record carries a grade with a
// grade-point value, and returns that value.
func (r CourseRecord) NumericGrade() (float64, bool) {
	v, ok := GradePoints[r.Grade]
	return v, ok
}

// Completed reports whether a grade has been posted for the record. Both
// letter grades and non-numeric symbols (withdrawals, pass/fail, transfer
// markers) count as completions.
func (r CourseRecord) Completed() bool {
	return r.Grade != ""
}
