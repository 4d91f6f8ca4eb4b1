package iosheet

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/wgskit/smpsh/pkg/errcode"
)

// SheetReadError creates an error for when a samplesheet file cannot
// be opened or parsed.
func SheetReadError(path string, err error) error {
	msg := `Cannot read samplesheet <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SheetReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read samplesheet: %w", err),
	}
}

// SheetEmptyError creates an error for a samplesheet without even a
// header row.
func SheetEmptyError(path string) error {
	msg := `Samplesheet <em>%s</em> is empty`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SheetEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("samplesheet '%s' has no rows", path),
	}
}

// MissingColumnError creates an error for a samplesheet file that
// lacks a required column.
func MissingColumnError(path, column string) error {
	msg := `Samplesheet <em>%s</em> has no column <em>%s</em>

<em>Possible causes:</em>
  - The samplesheet uses a different header for this column
  - The samplesheet describes single-end reads

<em>How to fix:</em>
  1. Check the header line of the samplesheet
  2. Point the column flags at the headers actually used`

	vars := []any{path, column}

	return &gn.Error{
		Code: errcode.SheetMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("column '%s' not found in '%s'", column, path),
	}
}

// ColumnAccessError creates an error for an operation that needs a
// column the sheet does not carry.
func ColumnAccessError(column string) error {
	msg := `Samplesheet has no column <em>%s</em>`
	vars := []any{column}

	return &gn.Error{
		Code: errcode.SheetMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("column '%s' is not in the sheet", column),
	}
}

// SheetWriteError creates an error for when the corrected samplesheet
// cannot be written.
func SheetWriteError(path string, err error) error {
	msg := `Cannot write samplesheet <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SheetWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write samplesheet: %w", err),
	}
}

// ReadNotFoundError creates an error for a read reference that
// matches no file under the reads directory.
func ReadNotFoundError(ref, dir string) error {
	msg := `Could not locate the read specified as <em>%s</em>

<em>Search directory:</em> %s

<em>Possible causes:</em>
  - The read file was not copied into the run directory
  - The reference is misspelled in the samplesheet

<em>How to fix:</em>
  1. Check that the read file exists under the search directory
  2. Compare the samplesheet entry with the file name`

	vars := []any{ref, dir}

	return &gn.Error{
		Code: errcode.ReadNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no file matches read '%s'", ref),
	}
}

// CreateDBDirError creates an error for when the sample database
// directory cannot be created.
func CreateDBDirError(dir string, err error) error {
	msg := `Cannot create database directory <em>%s</em>`
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create database directory: %w", err),
	}
}

// SampleDBReadError creates an error for when the sample database
// file cannot be read.
func SampleDBReadError(path string, err error) error {
	msg := `Cannot read sample database <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SampleDBReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read sample database: %w", err),
	}
}

// SampleDBMergeError creates an error for a samplesheet that cannot
// be merged into the sample database.
func SampleDBMergeError(path string, err error) error {
	msg := `Cannot merge samplesheet into <em>%s</em>

<em>Reason:</em> %v`

	vars := []any{path, err}

	return &gn.Error{
		Code: errcode.SampleDBMergeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to merge samplesheet: %w", err),
	}
}

// SampleDBWriteError creates an error for when the sample database
// file cannot be written.
func SampleDBWriteError(path string, err error) error {
	msg := `Cannot write sample database <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SampleDBWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write sample database: %w", err),
	}
}

// CancelledError creates an error for when processing is cancelled.
func CancelledError(err error) error {
	msg := "Samplesheet processing was cancelled"

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("processing cancelled: %w", err),
	}
}
