package iosheet

import (
	"path/filepath"

	"github.com/gnames/gnuuid"
	"github.com/wgskit/smpsh/pkg/sheet"
)

// Annotate appends the run metadata columns. Every row gets the run
// name in run_id, a deterministic identifier in uqid derived from the
// run name and both resolved read paths, and the run's expected
// assembly location in assembly. idCol is the configured identifier
// column name; it becomes a path segment of the assembly location.
func Annotate(sh *sheet.Sheet, runName, sheetPath, idCol string) error {
	fwIdx := sh.ColIdx(sheet.ColForward)
	if fwIdx < 0 {
		return ColumnAccessError(sheet.ColForward)
	}
	rvIdx := sh.ColIdx(sheet.ColReverse)
	if rvIdx < 0 {
		return ColumnAccessError(sheet.ColReverse)
	}

	sh.FillCol(sheet.ColRunID, runName)

	uqids := make([]string, len(sh.Rows))
	for i, row := range sh.Rows {
		uqids[i] = gnuuid.New(runName + row[fwIdx] + row[rvIdx]).String()
	}
	sh.SetCol(sheet.ColUqID, uqids)

	assembly := sheet.AssemblyPath(filepath.Dir(sheetPath), idCol)
	sh.FillCol(sheet.ColAssembly, assembly)

	return nil
}
