// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SubjectAggregate accumulates per-subject statistics for one student.
// Counts are non-negative; the grade-point average is undefined, not zero,
// until a numerically graded upper-level completion has been folded in.
type SubjectAggregate struct {
	// Completed counts every course in the subject with a posted grade,
	// numeric or not.
	Completed int `json:"completed" yaml:"completed"`

	// InProgress counts ungraded current-term courses that pass the
	// upper-level filter (not ignored, at or above the threshold).
	InProgress int `json:"in_progress" yaml:"in_progress"`

	// UpperCompleted counts completions that are upper-level: tracked
	// subject, numeric level at or above the threshold, not ignored.
	UpperCompleted int `json:"upper_completed" yaml:"upper_completed"`

	// UpperCredits sums the credits of numerically graded upper-level
	// completions.
	UpperCredits float64 `json:"upper_credits" yaml:"upper_credits"`

	// gradePoints and graded form the running (sum, count) pair behind
	// the upper-level GPA.
	gradePoints float64
	graded      int
}

// FoldGrade adds one numerically graded upper-level completion to the
// running grade-point average.
func (a *SubjectAggregate) FoldGrade(points, credits float64) {
	a.gradePoints += points
	a.graded++
	a.UpperCredits += credits
}

// GPA returns the upper-level grade-point average and true, or 0 and false
// when no numerically graded upper-level completion exists. Callers must
// render the false case as blank, never as 0.0.
func (a *SubjectAggregate) GPA() (float64, bool) {
	if a.graded == 0 {
		return 0, false
	}
	return a.gradePoints / float64(a.graded), true
}

// StudentSummary is the aggregate view of one student: identity fields
// from the block header plus one SubjectAggregate per tracked subject.
// The aggregator mutates it while folding records and treats it as
// read-only afterwards.
type StudentSummary struct {
	StudentID string `json:"student_id" yaml:"student_id"`
	Name      string `json:"name" yaml:"name"`
	Plan      string `json:"plan,omitempty" yaml:"plan,omitempty"`
	Sex       string `json:"sex,omitempty" yaml:"sex,omitempty"`
	Address   [3]string `json:"address,omitempty" yaml:"address,omitempty"`

	// Subjects holds one aggregate per tracked subject code. Every
	// tracked subject is present, even when the student took nothing
	// in it.
	Subjects map[string]*SubjectAggregate `json:"subjects" yaml:"subjects"`

	// Grades maps course identifier ("MTH 9") to the posted grade, or to
	// the term code for in-progress courses. Feeds the per-course
	// columns of the report.
	Grades map[string]string `json:"grades,omitempty" yaml:"grades,omitempty"`
}

// NewStudentSummary returns a summary with an empty aggregate for each
// tracked subject.
func NewStudentSummary(id, name string, subjects []string) *StudentSummary {
	s := &StudentSummary{
		StudentID: id,
		Name:      name,
		Subjects:  make(map[string]*SubjectAggregate, len(subjects)),
		Grades:    make(map[string]string),
	}
	for _, subj := range subjects {
		s.Subjects[subj] = &SubjectAggregate{}
	}
	return s
}
