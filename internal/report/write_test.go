package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/transcript-engine/pkg/types"
)

func TestWriteXLSX(t *testing.T) {
	cfg := testConfig()
	table := Assemble(testSummaries(cfg), cfg)

	path := filepath.Join(t.TempDir(), "TranscriptSummary.xlsx")
	require.NoError(t, WriteXLSX(table, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	jane, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", jane)

	// J2 is Jane's MTH^ GPA (column 10).
	gpa, err := f.GetCellValue(sheetName, "J2")
	require.NoError(t, err)
	assert.Equal(t, "4", gpa)

	// J3 is John's MTH^ GPA: undefined, so the cell stays empty.
	blank, err := f.GetCellValue(sheetName, "J3")
	require.NoError(t, err)
	assert.Equal(t, "", blank)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + two students
}

func TestWriteXLSXBadPath(t *testing.T) {
	table := &Table{Columns: []string{"Name"}}
	err := WriteXLSX(table, filepath.Join(t.TempDir(), "missing", "out.xlsx"))
	require.Error(t, err)
}

func TestWriteRecordsYAML(t *testing.T) {
	records := []types.CourseRecord{
		{StudentID: "123", StudentName: "Jane Doe", Subject: "MTH", Number: "301",
			Title: "Real Analysis", Credits: 4, Grade: "A", Term: "S20"},
		{StudentID: "123", StudentName: "Jane Doe", Subject: "PHY", Number: "310",
			Title: "Quantum Mechanics", Credits: 3, Term: "S21"},
	}

	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, WriteRecordsYAML(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []types.CourseRecord
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, records, got)
}
