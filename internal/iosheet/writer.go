package iosheet

import (
	"encoding/csv"
	"os"

	"github.com/wgskit/smpsh/pkg/sheet"
)

// WriteCorrected stores the corrected sheet as samplesheet.tsv in the
// current directory. Output from a previous run is overwritten.
func WriteCorrected(sh *sheet.Sheet) error {
	err := writeSheet(sheet.CorrectedSheetName, sh, sheet.CorrectedFormat)
	if err != nil {
		return SheetWriteError(sheet.CorrectedSheetName, err)
	}
	return nil
}

// writeSheet stores the sheet at path, header line first, in the
// given format. An existing file is replaced.
func writeSheet(path string, sh *sheet.Sheet, format sheet.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = format.Delimiter()

	records := make([][]string, 0, len(sh.Rows)+1)
	records = append(records, sh.Header)
	records = append(records, sh.Rows...)
	return w.WriteAll(records)
}
