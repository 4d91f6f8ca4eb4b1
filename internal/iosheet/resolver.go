package iosheet

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/wgskit/smpsh/pkg/sheet"
)

// indexReads walks dir once and maps the normalized name of every
// regular file to its path. The walk is in lexical order, so when two
// files normalize to the same name the lexically first path wins.
// Entries that cannot be visited are skipped.
func indexReads(dir string) map[string]string {
	idx := make(map[string]string)
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := sheet.NormalizeName(d.Name())
		if _, ok := idx[name]; !ok {
			idx[name] = path
		}
		return nil
	})
	return idx
}

// Resolve replaces the forward and reverse read references of every
// row with the path of the matching file under dir. A reference
// matches a file when their normalized forms are equal. A reference
// without a match stops the run.
func Resolve(ctx context.Context, sh *sheet.Sheet, dir string) error {
	fwIdx := sh.ColIdx(sheet.ColForward)
	if fwIdx < 0 {
		return ColumnAccessError(sheet.ColForward)
	}
	rvIdx := sh.ColIdx(sheet.ColReverse)
	if rvIdx < 0 {
		return ColumnAccessError(sheet.ColReverse)
	}

	idx := indexReads(dir)
	slog.Info("Indexed read files",
		"dir", dir,
		"files", len(idx))

	bar := pb.Full.Start(len(sh.Rows))
	bar.Set("prefix", "Resolving reads: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, row := range sh.Rows {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		for _, col := range []int{fwIdx, rvIdx} {
			ref := sheet.NormalizeRef(row[col])
			path, ok := idx[ref]
			if !ok {
				return ReadNotFoundError(ref, dir)
			}
			row[col] = path
		}
		bar.Add(1)
	}
	return nil
}
