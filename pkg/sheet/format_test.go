package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wgskit/smpsh/pkg/sheet"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected sheet.Format
	}{
		{
			name:     "tsv extension means tabs",
			path:     "/data/run42/samplesheet.tsv",
			expected: sheet.TSV,
		},
		{
			name:     "csv extension means commas",
			path:     "sheet.csv",
			expected: sheet.CSV,
		},
		{
			name:     "any other extension means commas",
			path:     "sheet.txt",
			expected: sheet.CSV,
		},
		{
			name:     "no extension means commas",
			path:     "samplesheet",
			expected: sheet.CSV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sheet.FormatForPath(tt.path))
		})
	}
}

func TestFormatDelimiter(t *testing.T) {
	assert.Equal(t, '\t', sheet.TSV.Delimiter())
	assert.Equal(t, ',', sheet.CSV.Delimiter())
	assert.Equal(t, "tsv", sheet.TSV.String())
	assert.Equal(t, "csv", sheet.CSV.String())
}

func TestAssemblyPath(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		idColumn string
		expected string
	}{
		{
			name:     "truncates at the data segment",
			dir:      "/proj/run42/data/reads",
			idColumn: "ID",
			expected: "/proj/run42/results/ID/assembly/contigs.fa",
		},
		{
			name:     "first occurrence wins",
			dir:      "/proj/data/nested/data/reads",
			idColumn: "ID",
			expected: "/proj/results/ID/assembly/contigs.fa",
		},
		{
			name:     "configured column name lands in the path",
			dir:      "/proj/run42/data",
			idColumn: "sample",
			expected: "/proj/run42/results/sample/assembly/contigs.fa",
		},
		{
			name:     "no data segment keeps the whole directory",
			dir:      "/proj/run42/sheets",
			idColumn: "ID",
			expected: "/proj/run42/sheets/results/ID/assembly/contigs.fa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				sheet.AssemblyPath(tt.dir, tt.idColumn))
		})
	}
}
