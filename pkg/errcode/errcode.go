package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Samplesheet errors
	SheetReadError
	SheetEmptyError
	SheetMissingColumnError
	SheetWriteError

	// Read resolution errors
	ReadNotFoundError

	// Sample database errors
	SampleDBReadError
	SampleDBMergeError
	SampleDBWriteError
)
