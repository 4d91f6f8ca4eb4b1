package sheet

import (
	"fmt"
)

// Merge appends to db the rows of in whose key-column value does not
// occur in db yet. Existing db rows always win and stay untouched.
// Columns are aligned by name: columns of in that db lacks are added
// to db (existing rows get empty cells), cells of appended rows that
// in lacks stay empty. Returns the number of appended rows.
func Merge(db, in *Sheet, key string) (int, error) {
	dbKey := db.ColIdx(key)
	if dbKey < 0 {
		return 0, fmt.Errorf("column %q is missing from the database", key)
	}
	inKey := in.ColIdx(key)
	if inKey < 0 {
		return 0, fmt.Errorf("column %q is missing from the samplesheet", key)
	}

	known := make(map[string]struct{}, len(db.Rows))
	for _, row := range db.Rows {
		known[row[dbKey]] = struct{}{}
	}

	// Align columns: extend db with columns only the incoming sheet has.
	for _, h := range in.Header {
		if db.HasCol(h) {
			continue
		}
		db.Header = append(db.Header, h)
		for i := range db.Rows {
			db.Rows[i] = append(db.Rows[i], "")
		}
	}

	// Map incoming columns to db columns once.
	colIdx := make([]int, len(in.Header))
	for i, h := range in.Header {
		colIdx[i] = db.ColIdx(h)
	}

	var added int
	for _, row := range in.Rows {
		if _, ok := known[row[inKey]]; ok {
			continue
		}
		newRow := make([]string, len(db.Header))
		for i, cell := range row {
			newRow[colIdx[i]] = cell
		}
		db.AppendRow(newRow)
		known[row[inKey]] = struct{}{}
		added++
	}
	return added, nil
}
