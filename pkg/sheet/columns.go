package sheet

// Canonical headers of a corrected samplesheet. The three role columns
// are renamed to the canonical names during load; the remaining three
// are added during annotation.
const (
	ColID       = "ID"
	ColForward  = "fw_reads"
	ColReverse  = "rv_reads"
	ColRunID    = "run_id"
	ColUqID     = "uqid"
	ColAssembly = "assembly"
)

// Columns maps the three logical roles of a samplesheet - sample
// identifier, forward reads, reverse reads - to the physical column
// names of a particular input file.
type Columns struct {
	ID      string
	Forward string
	Reverse string
}

// DefaultColumns returns the canonical column mapping. Sheets written
// by this tool always use it, so corrected sheets are re-read with
// these names.
func DefaultColumns() Columns {
	return Columns{
		ID:      ColID,
		Forward: ColForward,
		Reverse: ColReverse,
	}
}
