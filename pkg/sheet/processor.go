package sheet

import (
	"context"
)

// Processor defines the two run modes of smpsh. Both operate on the
// samplesheet named in the configuration; the mode is picked once per
// invocation by the CLI. Implementations check the context between
// rows during long operations.
type Processor interface {
	// Correct loads the raw samplesheet, resolves its read references
	// to files on disk, annotates every row with run metadata, and
	// writes the corrected sheet into the working directory.
	Correct(ctx context.Context) error

	// UpdateDB merges an already corrected samplesheet into the
	// cumulative sample database, creating the database file when it
	// does not exist yet.
	UpdateDB(ctx context.Context) error
}
