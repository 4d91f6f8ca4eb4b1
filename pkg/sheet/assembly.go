package sheet

import (
	"strings"
)

// AssemblyPath derives the expected assembly output path for a
// samplesheet location: the sheet's directory truncated at the first
// occurrence of the substring "/data", followed by the fixed pipeline
// suffix. The suffix names the configured identifier column, not a
// per-row sample value, so the path is identical for every row of a
// run.
// Example:
//   - AssemblyPath("/proj/run42/data/reads", "ID") →
//     "/proj/run42/results/ID/assembly/contigs.fa"
func AssemblyPath(sheetDir, idColumn string) string {
	prefix, _, _ := strings.Cut(sheetDir, "/data")
	return prefix + "/results/" + idColumn + "/assembly/contigs.fa"
}
