// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers structured course records from the raw text of
// unofficial transcripts. The document is segmented into per-student
// blocks (course lines carry no student reference of their own), then each
// block is scanned line by line with a small set of classifiers: semester
// heading, course line, identity field, or noise.
//
// The layout targeted is the LIU Post unofficial transcript print. Other
// institutions will need different patterns.
package extract

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/meshintel/transcript-engine/pkg/types"
)

// nameSplitter marks the start of a student block.
const nameSplitter = "Name : "

var (
	idRE   = regexp.MustCompile(`^Student ID: (.*)$`)
	sexRE  = regexp.MustCompile(`^Sex : (.*)$`)
	addrRE = regexp.MustCompile(`^Address : (.*)$`)
	planRE = regexp.MustCompile(`^Plan : (.*)$`)

	// semesterRE matches a semester section heading, e.g. "Fall 2018".
	// Everything after it, up to the next heading, was taken that term.
	semesterRE = regexp.MustCompile(`(Fall|Spring|Summer|Winter) (20[0-9][0-9])`)

	// courseRE matches one course line after space collapsing:
	// subject code, course number ("9", "41A", or "NE"), title, two
	// credit figures, and an optional grade symbol. Anything after the
	// grade (quality points etc.) is ignored.
	courseRE = regexp.MustCompile(
		`^([A-Z]{2,4}) ([0-9]+[A-Z]?|NE) (.+?) ([0-9]+\.[0-9][0-9]) ([0-9]+\.[0-9][0-9])(?: ([A-Z]{1,2}[+-]?))?(?: .*)?$`)

	spacesRE = regexp.MustCompile(` +`)
)

// Student holds the identity fields recovered from one block.
type Student struct {
	ID      string
	Name    string
	Plan    string
	Sex     string
	Address [3]string
}

// StudentBlock pairs a student with the course records parsed from their
// block, in document order.
type StudentBlock struct {
	Student Student
	Records []types.CourseRecord
}

// CollapseSpaces normalizes runs of spaces to a single space. PDF text
// extraction pads columns with arbitrary spacing.
func CollapseSpaces(text string) string {
	return spacesRE.ReplaceAllString(text, " ")
}

// Blocks yields one StudentBlock per student header in the document, in
// document order. Text before the first header (cover pages, stray course
// lines with no owner) is dropped. The sequence is lazy and single-use.
func Blocks(text string) iter.Seq[StudentBlock] {
	text = CollapseSpaces(text)
	return func(yield func(StudentBlock) bool) {
		chunks := strings.Split(text, nameSplitter)
		// chunks[0] precedes the first header and has no student.
		for _, chunk := range chunks[1:] {
			if !yield(parseBlock(chunk)) {
				return
			}
		}
	}
}

// Records flattens Blocks into the record sequence consumed by the
// aggregator: every course record in document order, tagged with its
// student. Lazy, finite, single-use.
func Records(text string) iter.Seq[types.CourseRecord] {
	return func(yield func(types.CourseRecord) bool) {
		for block := range Blocks(text) {
			for _, rec := range block.Records {
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// parseBlock scans one student chunk. The chunk starts with the student
// name (the "Name : " splitter has been removed); identity fields follow,
// then semester sections with course lines. The only scan state is the
// current semester; course lines before the first semester heading are
// malformed and skipped.
func parseBlock(chunk string) StudentBlock {
	lines := strings.Split(chunk, "\n")

	var block StudentBlock
	block.Student.Name = strings.TrimSpace(lines[0])

	term := ""
	addrNext := 0

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)

		if addrNext > 0 {
			block.Student.Address[3-addrNext] = line
			addrNext--
			continue
		}

		switch {
		case idRE.MatchString(line):
			block.Student.ID = idRE.FindStringSubmatch(line)[1]
		case sexRE.MatchString(line):
			block.Student.Sex = sexRE.FindStringSubmatch(line)[1]
		case addrRE.MatchString(line):
			block.Student.Address[0] = addrRE.FindStringSubmatch(line)[1]
			addrNext = 2
		case planRE.MatchString(line):
			// Plans appear once per semester section; the most recent
			// one is the student's current major.
			block.Student.Plan = planRE.FindStringSubmatch(line)[1]
		default:
			if m := semesterRE.FindStringSubmatch(line); m != nil {
				term = AbbrevTerm(m[1], m[2])
				continue
			}
			rec, ok := classifyCourse(line)
			if !ok || term == "" {
				continue
			}
			rec.Term = term
			rec.StudentID = block.Student.ID
			rec.StudentName = block.Student.Name
			block.Records = append(block.Records, rec)
		}
	}

	return block
}

// classifyCourse parses one line as a course entry. It is a pure function:
// student and term tagging happen in the caller. The boolean is false for
// lines that are not course entries (headings, GPA summaries, noise).
func classifyCourse(line string) (types.CourseRecord, bool) {
	m := courseRE.FindStringSubmatch(line)
	if m == nil {
		return types.CourseRecord{}, false
	}

	credits, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return types.CourseRecord{}, false
	}

	return types.CourseRecord{
		Subject: m[1],
		Number:  m[2],
		Title:   m[3],
		Credits: credits,
		Grade:   m[6],
	}, true
}

// AbbrevTerm shortens a semester heading to its code: "Fall", "2021"
// becomes "F21"; Spring, Summer, Winter become S, Sum, Win.
func AbbrevTerm(season, year string) string {
	abbr := map[string]string{
		"Fall":   "F",
		"Spring": "S",
		"Summer": "Sum",
		"Winter": "Win",
	}
	return abbr[season] + year[2:]
}
