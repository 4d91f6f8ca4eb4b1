package sheet

import (
	"strings"
)

// NormalizeRef normalizes a declared read reference for matching
// against files on disk: lowercase, cut at the first '.', directory
// prefix dropped, surrounding whitespace trimmed.
// Examples:
//   - "SampleA_R1.fastq.gz" → "samplea_r1"
//   - "reads/SampleA_R1.fq" → "samplea_r1"
//   - " SampleA_R1 "        → "samplea_r1"
func NormalizeRef(ref string) string {
	s := strings.ToLower(ref)
	s, _, _ = strings.Cut(s, ".")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// NormalizeName normalizes a candidate file name the same way as
// NormalizeRef, minus the directory handling: names coming from a
// directory walk are already bare.
// Examples:
//   - "SampleA_R1.fastq.gz" → "samplea_r1"
//   - "sampleb_r2.fq"       → "sampleb_r2"
func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s, _, _ = strings.Cut(s, ".")
	return strings.TrimSpace(s)
}
