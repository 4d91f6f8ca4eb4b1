// Package iosheet implements the Processor interface for samplesheet
// correction and sample database updates.
// This is an impure I/O package that reads and writes delimited files
// and scans the file system for sequencing reads.
package iosheet

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/wgskit/smpsh/pkg/config"
	"github.com/wgskit/smpsh/pkg/sheet"
)

// processor implements the Processor interface.
type processor struct {
	cfg *config.Config
}

// New creates a new Processor.
func New(cfg *config.Config) sheet.Processor {
	return &processor{cfg: cfg}
}

// Correct runs the correction pipeline on the configured samplesheet.
// Orchestrates all phases: load, read resolution, annotation, and
// output.
func (p *processor) Correct(ctx context.Context) error {
	startTime := time.Now()
	sheetPath := p.cfg.Run.SamplesheetPath
	slog.Info("Starting samplesheet correction",
		"samplesheet", sheetPath)

	cols := sheet.Columns{
		ID:      p.cfg.Columns.ID,
		Forward: p.cfg.Columns.Forward,
		Reverse: p.cfg.Columns.Reverse,
	}

	gn.Info("(1/4) Loading samplesheet <em>%s</em>",
		filepath.Base(sheetPath))
	sh, err := Read(sheetPath, cols)
	if err != nil {
		return err
	}
	slog.Info("Samplesheet loaded",
		"rows", len(sh.Rows),
		"columns", len(sh.Header))

	// Check context cancellation
	select {
	case <-ctx.Done():
		return CancelledError(ctx.Err())
	default:
	}

	// Reads live next to the samplesheet unless a directory is
	// configured.
	readsDir := p.cfg.Run.ReadsDir
	if readsDir == "" {
		readsDir = filepath.Dir(sheetPath)
	}

	gn.Info("(2/4) Resolving read files...")
	if err = Resolve(ctx, sh, readsDir); err != nil {
		return err
	}
	gn.Message("<em>Resolved reads for %s samples</em>",
		humanize.Comma(int64(len(sh.Rows))))

	gn.Info("(3/4) Annotating samples...")
	err = Annotate(sh, p.cfg.Run.Name, sheetPath, p.cfg.Columns.ID)
	if err != nil {
		return err
	}

	gn.Info("(4/4) Writing corrected samplesheet...")
	if err = WriteCorrected(sh); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Correction complete",
		"samples", len(sh.Rows),
		"output", sheet.CorrectedSheetName,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Message("<em>Wrote %s with %s samples in %s</em>",
		sheet.CorrectedSheetName,
		humanize.Comma(int64(len(sh.Rows))),
		gnfmt.TimeString(duration.Seconds()))

	return nil
}

// UpdateDB folds the corrected samplesheet of a run into the
// long-term sample database.
func (p *processor) UpdateDB(ctx context.Context) error {
	startTime := time.Now()

	dbDir := p.cfg.Run.SampleDBDir
	// The corrected sheet sits next to the samplesheet given on the
	// command line.
	sheetPath := filepath.Join(
		filepath.Dir(p.cfg.Run.SamplesheetPath),
		sheet.CorrectedSheetName,
	)
	dbPath := filepath.Join(dbDir, sheet.SampleDBName)
	slog.Info("Starting sample database update",
		"samplesheet", sheetPath,
		"database", dbPath)

	gn.Info("(1/3) Preparing database directory <em>%s</em>", dbDir)
	if err := gnsys.MakeDir(dbDir); err != nil {
		return CreateDBDirError(dbDir, err)
	}

	gn.Info("(2/3) Loading corrected samplesheet...")
	sh, err := Read(sheetPath, sheet.DefaultColumns())
	if err != nil {
		return err
	}
	slog.Info("Samplesheet loaded",
		"rows", len(sh.Rows),
		"columns", len(sh.Header))

	// Check context cancellation
	select {
	case <-ctx.Done():
		return CancelledError(ctx.Err())
	default:
	}

	gn.Info("(3/3) Merging samples into the database...")
	added, total, err := MergeSampleDB(sh, dbPath)
	if err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Sample database updated",
		"added", added,
		"total", total,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Message("<em>Added %s samples, %s total, in %s</em>",
		humanize.Comma(int64(added)),
		humanize.Comma(int64(total)),
		gnfmt.TimeString(duration.Seconds()))

	return nil
}
