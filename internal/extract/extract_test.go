package extract

import (
	"slices"
	"testing"

	"github.com/meshintel/transcript-engine/pkg/types"
)

// sampleDoc is a condensed two-student transcript in the LIU Post layout:
// identity prologue, semester sections, course lines with two credit
// figures and an optional grade. The stray course line at the top has no
// owning student and must be dropped.
const sampleDoc = `Unofficial Transcript
MTH 101 Stray  Course 3.00 3.00 A

Name : Jane Doe
Student ID: 123
Sex : F
Address : 1 Main St
 Apt 2
 Brookville NY
Spring 2020
Plan : Mathematics BS
MTH 301 Real Analysis 4.00 4.00 A
MTH 101 College  Algebra 3.00 3.00 B
Term GPA : 3.50 Term Totals : 7.00 7.00
Spring 2021
PHY 310 Quantum Mechanics 3.00 0.00
Name : John Smith
Student ID: 456
Sex : M
Fall 2020
Plan : Physics BS
MTH 305 Topology 4.00 0.00 W
CHM 201 Organic Chemistry I 3.00 3.00 A
`

// --- line classifiers ---

func TestClassifyCourse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.CourseRecord
		ok   bool
	}{
		{
			name: "graded line",
			line: "MTH 9 College Algebra 4.00 4.00 A-",
			want: types.CourseRecord{Subject: "MTH", Number: "9", Title: "College Algebra", Credits: 4.00, Grade: "A-"},
			ok:   true,
		},
		{
			name: "no grade posted",
			line: "PHY 310 Quantum Mechanics 3.00 0.00",
			want: types.CourseRecord{Subject: "PHY", Number: "310", Title: "Quantum Mechanics", Credits: 3.00},
			ok:   true,
		},
		{
			name: "withdrawal symbol",
			line: "MTH 305 Topology 4.00 0.00 W",
			want: types.CourseRecord{Subject: "MTH", Number: "305", Title: "Topology", Credits: 4.00, Grade: "W"},
			ok:   true,
		},
		{
			name: "transfer marker",
			line: "MTH 16 Statistics 3.00 3.00 TR",
			want: types.CourseRecord{Subject: "MTH", Number: "16", Title: "Statistics", Credits: 3.00, Grade: "TR"},
			ok:   true,
		},
		{
			name: "suffixed course number",
			line: "MTH 41A Honors Seminar 1.00 1.00 A",
			want: types.CourseRecord{Subject: "MTH", Number: "41A", Title: "Honors Seminar", Credits: 1.00, Grade: "A"},
			ok:   true,
		},
		{
			name: "non-numeric course number",
			line: "MTH NE Transfer Equivalency 3.00 3.00 B+",
			want: types.CourseRecord{Subject: "MTH", Number: "NE", Title: "Transfer Equivalency", Credits: 3.00, Grade: "B+"},
			ok:   true,
		},
		{
			name: "trailing quality points",
			line: "MTH 7 Calculus I 4.00 4.00 B+ 13.332",
			want: types.CourseRecord{Subject: "MTH", Number: "7", Title: "Calculus I", Credits: 4.00, Grade: "B+"},
			ok:   true,
		},
		{name: "gpa summary line", line: "Term GPA : 3.50 Term Totals : 7.00 7.00", ok: false},
		{name: "section heading", line: "Course Description Attempted Earned Grade", ok: false},
		{name: "blank", line: "", ok: false},
		{name: "no credit figures", line: "MTH 9 College Algebra", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifyCourse(tt.line)
			if ok != tt.ok {
				t.Fatalf("classifyCourse(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("classifyCourse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestAbbrevTerm(t *testing.T) {
	tests := []struct {
		season, year, want string
	}{
		{"Fall", "2021", "F21"},
		{"Spring", "2020", "S20"},
		{"Summer", "2019", "Sum19"},
		{"Winter", "2022", "Win22"},
	}
	for _, tt := range tests {
		if got := AbbrevTerm(tt.season, tt.year); got != tt.want {
			t.Errorf("AbbrevTerm(%q, %q) = %q, want %q", tt.season, tt.year, got, tt.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	got := CollapseSpaces("MTH  9   College    Algebra 4.00")
	want := "MTH 9 College Algebra 4.00"
	if got != want {
		t.Errorf("CollapseSpaces = %q, want %q", got, want)
	}
}

// --- document segmentation ---

func TestBlocks(t *testing.T) {
	blocks := slices.Collect(Blocks(sampleDoc))
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	jane := blocks[0]
	if jane.Student.Name != "Jane Doe" || jane.Student.ID != "123" {
		t.Errorf("first block student = %+v", jane.Student)
	}
	if jane.Student.Plan != "Mathematics BS" {
		t.Errorf("Plan = %q, want Mathematics BS", jane.Student.Plan)
	}
	if jane.Student.Sex != "F" {
		t.Errorf("Sex = %q, want F", jane.Student.Sex)
	}
	wantAddr := [3]string{"1 Main St", "Apt 2", "Brookville NY"}
	if jane.Student.Address != wantAddr {
		t.Errorf("Address = %v, want %v", jane.Student.Address, wantAddr)
	}

	if len(jane.Records) != 3 {
		t.Fatalf("Jane has %d records, want 3: %+v", len(jane.Records), jane.Records)
	}
	first := jane.Records[0]
	if first.Course() != "MTH 301" || first.Grade != "A" || first.Term != "S20" {
		t.Errorf("first record = %+v", first)
	}
	last := jane.Records[2]
	if last.Course() != "PHY 310" || last.Grade != "" || last.Term != "S21" {
		t.Errorf("in-progress record = %+v", last)
	}

	john := blocks[1]
	if john.Student.Name != "John Smith" {
		t.Errorf("second block student = %+v", john.Student)
	}
	// Untracked subjects are still extracted; filtering is the
	// aggregator's job.
	if len(john.Records) != 2 {
		t.Fatalf("John has %d records, want 2", len(john.Records))
	}
	if john.Records[0].Grade != "W" || john.Records[0].Term != "F20" {
		t.Errorf("withdrawal record = %+v", john.Records[0])
	}
	if john.Records[1].Subject != "CHM" {
		t.Errorf("untracked record = %+v", john.Records[1])
	}
}

func TestRecordsTagging(t *testing.T) {
	var records []types.CourseRecord
	for rec := range Records(sampleDoc) {
		records = append(records, rec)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	for _, rec := range records[:3] {
		if rec.StudentID != "123" || rec.StudentName != "Jane Doe" {
			t.Errorf("record %s tagged %q/%q, want Jane Doe/123", rec.Course(), rec.StudentID, rec.StudentName)
		}
	}
	for _, rec := range records[3:] {
		if rec.StudentID != "456" {
			t.Errorf("record %s tagged %q, want 456", rec.Course(), rec.StudentID)
		}
	}
}

func TestBlocksDropsOwnerlessCourses(t *testing.T) {
	// The stray MTH 101 at the top of sampleDoc precedes any student
	// header and must not surface anywhere.
	for rec := range Records(sampleDoc) {
		if rec.StudentID == "" {
			t.Errorf("ownerless record leaked: %+v", rec)
		}
	}
}

func TestBlocksCourseBeforeSemester(t *testing.T) {
	doc := "Name : Jane Doe\nStudent ID: 123\nMTH 301 Real Analysis 4.00 4.00 A\nSpring 2020\nMTH 302 Complex Analysis 4.00 4.00 B\n"
	blocks := slices.Collect(Blocks(doc))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	// MTH 301 has no term context and is skipped; MTH 302 survives.
	if len(blocks[0].Records) != 1 || blocks[0].Records[0].Course() != "MTH 302" {
		t.Errorf("records = %+v, want only MTH 302", blocks[0].Records)
	}
}

func TestBlocksEmptyDocument(t *testing.T) {
	if blocks := slices.Collect(Blocks("no headers here\n")); len(blocks) != 0 {
		t.Errorf("got %d blocks from headerless text, want 0", len(blocks))
	}
}

func TestRecordLevel(t *testing.T) {
	tests := []struct {
		number string
		level  int
		ok     bool
	}{
		{"301", 301, true},
		{"9", 9, true},
		{"41A", 41, true},
		{"NE", 0, false},
	}
	for _, tt := range tests {
		rec := types.CourseRecord{Number: tt.number}
		level, ok := rec.Level()
		if level != tt.level || ok != tt.ok {
			t.Errorf("Level(%q) = %d, %v; want %d, %v", tt.number, level, ok, tt.level, tt.ok)
		}
	}
}
