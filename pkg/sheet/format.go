package sheet

import (
	"strings"
)

// Format is the field layout of a delimited samplesheet file.
type Format int

const (
	// CSV is comma-separated fields.
	CSV Format = iota
	// TSV is tab-separated fields.
	TSV
)

// Delimiter returns the field separator of the format.
func (f Format) Delimiter() rune {
	if f == TSV {
		return '\t'
	}
	return ','
}

func (f Format) String() string {
	if f == TSV {
		return "tsv"
	}
	return "csv"
}

const (
	// CorrectedSheetName is the name of the corrected samplesheet
	// written into the working directory after a correct run.
	CorrectedSheetName = "samplesheet.tsv"

	// SampleDBName is the name of the cumulative sample database file
	// inside the sample database directory.
	SampleDBName = "sampledb.tsv"
)

// The sample database formats stay byte-compatible with files written
// by earlier versions of the pipeline: an existing database is read
// comma-separated and written back tab-separated after a merge, while
// a freshly created database starts comma-separated. They are fixed
// constants, not configuration knobs.
const (
	CorrectedFormat = TSV
	DBReadFormat    = CSV
	DBMergeFormat   = TSV
	DBCreateFormat  = CSV
)

// FormatForPath returns the format implied by the path extension:
// tab-separated for '.tsv', comma-separated for everything else.
func FormatForPath(path string) Format {
	if strings.HasSuffix(path, ".tsv") {
		return TSV
	}
	return CSV
}
