package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wgskit/smpsh/pkg/sheet"
)

func newTestSheet() *sheet.Sheet {
	s := sheet.New([]string{"sample", "r1", "r2", "note"})
	s.AppendRow([]string{"S1", "s1_fw", "s1_rv", "good"})
	s.AppendRow([]string{"S2", "s2_fw", "s2_rv", "repeat"})
	return s
}

// TestColIdx_FirstMatchWins verifies lookups return the first column
// with the given name.
func TestColIdx_FirstMatchWins(t *testing.T) {
	s := sheet.New([]string{"a", "b", "a"})
	assert.Equal(t, 0, s.ColIdx("a"))
	assert.Equal(t, 1, s.ColIdx("b"))
	assert.Equal(t, -1, s.ColIdx("c"))
	assert.True(t, s.HasCol("b"))
	assert.False(t, s.HasCol("c"))
}

// TestCol_ReturnsValues verifies column extraction.
func TestCol_ReturnsValues(t *testing.T) {
	s := newTestSheet()
	assert.Equal(t, []string{"S1", "S2"}, s.Col("sample"))
	assert.Equal(t, []string{"good", "repeat"}, s.Col("note"))
	assert.Nil(t, s.Col("missing"))
}

// TestSetCol_ReplacesExisting verifies setting an existing column
// keeps its position.
func TestSetCol_ReplacesExisting(t *testing.T) {
	s := newTestSheet()
	s.SetCol("r1", []string{"/data/s1_fw.fq", "/data/s2_fw.fq"})

	assert.Equal(t, []string{"sample", "r1", "r2", "note"}, s.Header,
		"header should be unchanged")
	assert.Equal(t, "/data/s1_fw.fq", s.Rows[0][1])
	assert.Equal(t, "/data/s2_fw.fq", s.Rows[1][1])
}

// TestSetCol_AppendsMissing verifies setting an absent column appends
// it to every row.
func TestSetCol_AppendsMissing(t *testing.T) {
	s := newTestSheet()
	s.SetCol("uqid", []string{"u1", "u2"})

	require.Len(t, s.Header, 5)
	assert.Equal(t, "uqid", s.Header[4])
	assert.Equal(t, "u1", s.Rows[0][4])
	assert.Equal(t, "u2", s.Rows[1][4])
}

// TestFillCol_Broadcasts verifies one value fills the whole column.
func TestFillCol_Broadcasts(t *testing.T) {
	s := newTestSheet()
	s.FillCol("run_id", "run42")

	assert.Equal(t, []string{"run42", "run42"}, s.Col("run_id"))

	// Filling again overwrites in place.
	s.FillCol("run_id", "run43")
	require.Len(t, s.Header, 5)
	assert.Equal(t, []string{"run43", "run43"}, s.Col("run_id"))
}

// TestRenameCols_Mapping verifies header renames according to a
// mapping, with keys for absent columns ignored.
func TestRenameCols_Mapping(t *testing.T) {
	s := newTestSheet()
	s.RenameCols(map[string]string{
		"sample":  "ID",
		"r1":      "fw_reads",
		"r2":      "rv_reads",
		"missing": "x",
	})

	assert.Equal(t, []string{"ID", "fw_reads", "rv_reads", "note"}, s.Header)
	assert.Equal(t, []string{"S1", "S2"}, s.Col("ID"))
}

// TestRenameCols_NoChaining verifies renames are applied in a single
// pass, so a column named like another mapping's target is unaffected
// by that mapping.
func TestRenameCols_NoChaining(t *testing.T) {
	s := sheet.New([]string{"sample", "ID", "r2"})
	s.RenameCols(map[string]string{
		"sample": "ID",
		"ID":     "fw_reads",
		"r2":     "rv_reads",
	})

	assert.Equal(t, []string{"ID", "fw_reads", "rv_reads"}, s.Header,
		"the original ID column should become fw_reads, not chain further")
}
