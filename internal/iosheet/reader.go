package iosheet

import (
	"encoding/csv"
	"os"

	"github.com/wgskit/smpsh/pkg/sheet"
)

// Read loads the samplesheet at path. The delimiter follows the file
// extension: '.tsv' means tab-separated, anything else is read
// comma-separated. Tab-separated files get their reverse-read column
// checked up front; for other files a missing column surfaces later,
// when it is first accessed. After loading, the configured role
// columns are renamed to the canonical headers.
func Read(path string, cols sheet.Columns) (*sheet.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SheetReadError(path, err)
	}
	defer f.Close()

	format := sheet.FormatForPath(path)
	r := csv.NewReader(f)
	r.Comma = format.Delimiter()
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, SheetReadError(path, err)
	}
	if len(records) == 0 {
		return nil, SheetEmptyError(path)
	}

	sh := sheet.New(records[0])
	sh.Rows = records[1:]

	if format == sheet.TSV && !sh.HasCol(cols.Reverse) {
		return nil, MissingColumnError(path, cols.Reverse)
	}

	sh.RenameCols(map[string]string{
		cols.ID:      sheet.ColID,
		cols.Forward: sheet.ColForward,
		cols.Reverse: sheet.ColReverse,
	})
	return sh, nil
}
