// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate folds course records into per-student, per-subject
// summaries.
//
// Completion policy: any posted grade marks a course completed, including
// non-numeric symbols such as W (withdrawal) or P (pass). Only grades in
// the grade-point table enter the GPA fold; everything else counts toward
// completion and nothing more. An ungraded course counts as in progress
// only when its term is the configured current term; ungraded rows from
// older terms are stale and dropped.
package aggregate

import (
	"errors"
	"iter"

	"github.com/meshintel/transcript-engine/internal/extract"
	"github.com/meshintel/transcript-engine/pkg/types"
)

// ErrNoStudents is returned when the document yields zero student blocks.
// A run that recognized nobody must fail rather than emit an empty report.
var ErrNoStudents = errors.New("no students recognized in document")

// Summarize consumes the extractor's block sequence and returns one
// StudentSummary per distinct student ID, in first-seen order. A student
// whose transcript appears twice in the document folds into a single
// summary. Blocks with no recognizable ID stay separate.
func Summarize(blocks iter.Seq[extract.StudentBlock], cfg types.Config) ([]*types.StudentSummary, error) {
	var summaries []*types.StudentSummary
	byID := make(map[string]*types.StudentSummary)

	for block := range blocks {
		s := byID[block.Student.ID]
		if s == nil || block.Student.ID == "" {
			s = types.NewStudentSummary(block.Student.ID, block.Student.Name, cfg.Subjects)
			s.Plan = block.Student.Plan
			s.Sex = block.Student.Sex
			s.Address = block.Student.Address
			summaries = append(summaries, s)
			if block.Student.ID != "" {
				byID[block.Student.ID] = s
			}
		} else if s.Plan == "" {
			s.Plan = block.Student.Plan
		}

		for _, rec := range block.Records {
			Fold(s, rec, cfg)
		}
	}

	if len(summaries) == 0 {
		return nil, ErrNoStudents
	}
	return summaries, nil
}

// Fold applies one course record to the student's summary. Records in
// untracked subjects are discarded entirely: they affect no aggregate and
// no per-course column.
func Fold(s *types.StudentSummary, rec types.CourseRecord, cfg types.Config) {
	if !cfg.TracksSubject(rec.Subject) {
		return
	}

	agg := s.Subjects[rec.Subject]
	upper := upperLevel(rec, cfg)

	switch {
	case rec.Completed():
		agg.Completed++
		if upper {
			agg.UpperCompleted++
			if points, ok := rec.NumericGrade(); ok {
				agg.FoldGrade(points, rec.Credits)
			}
		}
		s.Grades[rec.Course()] = rec.Grade
	case rec.Term == cfg.CurrentTerm:
		if upper {
			agg.InProgress++
		}
		s.Grades[rec.Course()] = rec.Term
	}
}

// upperLevel reports whether the record counts toward the upper-level
// aggregates: numeric level at or above the threshold and not on the
// ignore list. A non-numeric course number ("NE") never qualifies when a
// threshold is set.
func upperLevel(rec types.CourseRecord, cfg types.Config) bool {
	if cfg.Ignored(rec.Subject, rec.Course()) {
		return false
	}
	if cfg.UpperLevelMin > 0 {
		level, ok := rec.Level()
		if !ok || level < cfg.UpperLevelMin {
			return false
		}
	}
	return true
}
