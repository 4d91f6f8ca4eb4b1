package iosheet

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/wgskit/smpsh/pkg/sheet"
)

// MergeSampleDB folds the corrected sheet into the sample database at
// dbPath. When the database exists, rows whose identifier is already
// known are skipped and the merged table is written back
// tab-separated. When it does not exist, the sheet itself becomes the
// database, written comma-separated. Returns the number of appended
// rows and the database size after the merge.
func MergeSampleDB(sh *sheet.Sheet, dbPath string) (int, int, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if !os.IsNotExist(err) {
			return 0, 0, SampleDBReadError(dbPath, err)
		}
		if err = writeSheet(dbPath, sh, sheet.DBCreateFormat); err != nil {
			return 0, 0, SampleDBWriteError(dbPath, err)
		}
		return len(sh.Rows), len(sh.Rows), nil
	}

	db, err := readSampleDB(dbPath)
	if err != nil {
		return 0, 0, err
	}

	added, err := sheet.Merge(db, sh, sheet.ColID)
	if err != nil {
		return 0, 0, SampleDBMergeError(dbPath, err)
	}

	if err = writeSheet(dbPath, db, sheet.DBMergeFormat); err != nil {
		return 0, 0, SampleDBWriteError(dbPath, err)
	}
	return added, len(db.Rows), nil
}

// readSampleDB loads the database file comma-separated. No column
// renames apply: the database already carries canonical headers.
func readSampleDB(path string) (*sheet.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SampleDBReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sheet.DBReadFormat.Delimiter()
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, SampleDBReadError(path, err)
	}
	if len(records) == 0 {
		return nil, SampleDBReadError(path,
			fmt.Errorf("database file is empty"))
	}

	db := sheet.New(records[0])
	db.Rows = records[1:]
	return db, nil
}
