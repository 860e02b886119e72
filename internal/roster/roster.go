// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster keeps a history of analysis runs in SQLite. Each
// successful analyze run stores one row per student per tracked subject,
// so candidate lists can be compared across semesters without re-reading
// old PDFs.
package roster

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/transcript-engine/pkg/types"
)

// Store wraps the roster SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the roster database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening roster database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating roster schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_file TEXT NOT NULL,
			term TEXT NOT NULL,
			students INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			student_id TEXT NOT NULL,
			name TEXT NOT NULL,
			plan TEXT,
			subject TEXT NOT NULL,
			completed INTEGER NOT NULL,
			upper_completed INTEGER NOT NULL,
			gpa REAL,
			upper_credits REAL NOT NULL,
			in_progress INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_run_id ON entries(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_student_id ON entries(student_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run describes one recorded analysis run.
type Run struct {
	ID        int64
	InputFile string
	Term      string
	Students  int
	CreatedAt time.Time
}

// Entry is one student/subject line from a recorded run. GPA is nil when
// the run had no numerically graded upper-level completion for the pair.
type Entry struct {
	RunID          int64
	StudentID      string
	Name           string
	Plan           string
	Subject        string
	Completed      int
	UpperCompleted int
	GPA            *float64
	UpperCredits   float64
	InProgress     int
}

// RecordRun stores one analysis run and its per-student subject lines in a
// single transaction. It returns the new run's ID.
func (s *Store) RecordRun(ctx context.Context, inputFile string, cfg types.Config, summaries []*types.StudentSummary) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (input_file, term, students, created_at) VALUES (?, ?, ?, ?)`,
		inputFile, cfg.CurrentTerm, len(summaries), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (run_id, student_id, name, plan, subject,
			completed, upper_completed, gpa, upper_credits, in_progress)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing entry insert: %w", err)
	}
	defer stmt.Close()

	for _, sum := range summaries {
		for _, subj := range cfg.Subjects {
			agg := sum.Subjects[subj]
			var gpa any
			if v, ok := agg.GPA(); ok {
				gpa = v
			}
			if _, err := stmt.ExecContext(ctx, runID, sum.StudentID, sum.Name,
				sum.Plan, subj, agg.Completed, agg.UpperCompleted, gpa,
				agg.UpperCredits, agg.InProgress); err != nil {
				return 0, fmt.Errorf("inserting entry for %s/%s: %w", sum.StudentID, subj, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs returns all recorded runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_file, term, students, created_at FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.InputFile, &r.Term, &r.Students, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// StudentHistory returns every recorded line for one student across all
// runs, oldest run first.
func (s *Store) StudentHistory(ctx context.Context, studentID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, student_id, name, plan, subject,
			completed, upper_completed, gpa, upper_credits, in_progress
		 FROM entries WHERE student_id = ? ORDER BY run_id, subject`, studentID)
	if err != nil {
		return nil, fmt.Errorf("querying history for %s: %w", studentID, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var plan sql.NullString
		var gpa sql.NullFloat64
		if err := rows.Scan(&e.RunID, &e.StudentID, &e.Name, &plan, &e.Subject,
			&e.Completed, &e.UpperCompleted, &gpa, &e.UpperCredits, &e.InProgress); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Plan = plan.String
		if gpa.Valid {
			v := gpa.Float64
			e.GPA = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
