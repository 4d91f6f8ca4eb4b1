// Package sheet defines the in-memory samplesheet model and the
// processing contract implemented by internal/iosheet.
//
// A samplesheet is a small, ordered table of string cells. Columns are
// addressed by header name, first match wins. Columns that are not one
// of the configured roles pass through the pipeline untouched.
package sheet

// Sheet is an ordered table: a header followed by data rows of string
// cells. Sheets are small enough to live fully in memory; all
// mutations happen in place.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// New creates an empty Sheet with the given header.
func New(header []string) *Sheet {
	return &Sheet{Header: header}
}

// ColIdx returns the index of the first column with the given name,
// or -1 when the column is absent.
func (s *Sheet) ColIdx(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasCol reports whether a column with the given name exists.
func (s *Sheet) HasCol(name string) bool {
	return s.ColIdx(name) >= 0
}

// Col returns the values of the named column, one per row, or nil
// when the column is absent.
func (s *Sheet) Col(name string) []string {
	idx := s.ColIdx(name)
	if idx < 0 {
		return nil
	}
	res := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		res[i] = row[idx]
	}
	return res
}

// SetCol sets the values of the named column, one value per row. When
// the column is absent it is appended to the header and to every row.
// The caller must supply exactly one value per row.
func (s *Sheet) SetCol(name string, vals []string) {
	idx := s.ColIdx(name)
	if idx < 0 {
		s.Header = append(s.Header, name)
		for i := range s.Rows {
			s.Rows[i] = append(s.Rows[i], vals[i])
		}
		return
	}
	for i := range s.Rows {
		s.Rows[i][idx] = vals[i]
	}
}

// FillCol sets every row's cell of the named column to the same value,
// appending the column when it is absent.
func (s *Sheet) FillCol(name, val string) {
	idx := s.ColIdx(name)
	if idx < 0 {
		s.Header = append(s.Header, name)
		for i := range s.Rows {
			s.Rows[i] = append(s.Rows[i], val)
		}
		return
	}
	for i := range s.Rows {
		s.Rows[i][idx] = val
	}
}

// RenameCols renames header columns according to the mapping. The
// mapping is applied in a single pass, so renames never chain even
// when a new name is also an old name. Every header cell that matches
// a key is renamed; keys without a matching column are ignored.
func (s *Sheet) RenameCols(mapping map[string]string) {
	for i, h := range s.Header {
		if to, ok := mapping[h]; ok {
			s.Header[i] = to
		}
	}
}

// AppendRow adds a data row. The caller must supply exactly one cell
// per header column.
func (s *Sheet) AppendRow(row []string) {
	s.Rows = append(s.Rows, row)
}
