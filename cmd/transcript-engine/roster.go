// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/meshintel/transcript-engine/internal/roster"
)

// rosterDBFile is the roster database filename inside the output directory.
const rosterDBFile = "roster.db"

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Query past analysis runs",
	Long: `Roster reads the run-history database that analyze maintains. Use it to
list recorded runs or follow one student's numbers across semesters.`,
}

var rosterRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded analysis runs, newest first",
	RunE:  runRosterRuns,
}

var rosterStudentCmd = &cobra.Command{
	Use:   "student <student-id>",
	Short: "Show one student's recorded numbers across runs",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterStudent,
}

func init() {
	rosterCmd.PersistentFlags().String("db", "", "roster database path (default: <out-dir>/"+rosterDBFile+")")
	rosterCmd.PersistentFlags().Bool("json", false, "output as JSON")

	rosterCmd.AddCommand(rosterRunsCmd)
	rosterCmd.AddCommand(rosterStudentCmd)
	rootCmd.AddCommand(rosterCmd)
}

func openRoster(cmd *cobra.Command) (*roster.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = filepath.Join(loadConfig().OutDir, rosterDBFile)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("roster database: %w (run analyze first)", err)
	}
	return roster.Open(path)
}

func runRosterRuns(cmd *cobra.Command, args []string) error {
	store, err := openRoster(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-28s  %-6s  %-8s  %s\n", "Run", "Input", "Term", "Students", "Recorded")
	for _, r := range runs {
		fmt.Printf("%-4d  %-28s  %-6s  %-8d  %s\n",
			r.ID, r.InputFile, r.Term, r.Students, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runRosterStudent(cmd *cobra.Command, args []string) error {
	store, err := openRoster(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.StudentHistory(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Printf("No history for student %s.\n", args[0])
		return nil
	}

	fmt.Printf("%s (%s)\n", entries[0].Name, entries[0].StudentID)
	fmt.Printf("%-4s  %-5s  %-10s  %-10s  %-6s  %-6s  %s\n",
		"Run", "Subj", "Completed", "Upper", "GPA", "Creds", "Now")
	for _, e := range entries {
		gpa := ""
		if e.GPA != nil {
			gpa = fmt.Sprintf("%.3f", *e.GPA)
		}
		fmt.Printf("%-4d  %-5s  %-10d  %-10d  %-6s  %-6.2f  %d\n",
			e.RunID, e.Subject, e.Completed, e.UpperCompleted, gpa, e.UpperCredits, e.InProgress)
	}
	return nil
}
