package sheet

// Sheet is the pure grid state: sparse cell values and dimensions.
//
// Every effective mutation bumps Version and replaces LastChange. Writes that
// leave the grid unchanged are no-ops and bump nothing.
type Sheet struct {
	cells   map[Pos]string
	size    Size
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns an empty sheet of the given size. Negative dimensions are
// treated as zero.
func New(size Size) *Sheet {
	if size.Cols < 0 {
		size.Cols = 0
	}
	if size.Rows < 0 {
		size.Rows = 0
	}
	return &Sheet{
		cells: make(map[Pos]string),
		size:  size,
	}
}

func (s *Sheet) Size() Size { return s.size }

func (s *Sheet) Cols() int { return s.size.Cols }

func (s *Sheet) Rows() int { return s.size.Rows }

func (s *Sheet) Version() uint64 { return s.version }

// Contains reports whether p is on-grid.
func (s *Sheet) Contains(p Pos) bool { return s.size.Contains(p) }

// Len returns the number of stored (non-absent) cells.
func (s *Sheet) Len() int { return len(s.cells) }

// Value returns the stored value at p. Absent cells, including positions
// outside the grid, report ok=false.
func (s *Sheet) Value(p Pos) (v string, ok bool) {
	v, ok = s.cells[p]
	return v, ok
}

// SetValue stores v at p, overwriting any prior value. An empty v is stored
// as-is; clearing a cell is RemoveValue.
func (s *Sheet) SetValue(p Pos, v string) error {
	if !s.size.Contains(p) {
		return invalidPosition("set value", p, s.size)
	}
	prev, had := s.cells[p]
	if had && prev == v {
		return nil
	}

	change := s.beginChange(ChangeSet)
	s.cells[p] = v
	s.version++
	change.pos = p
	change.before, change.hadBefore = prev, had
	change.after, change.hasAfter = v, true
	s.commitChange(change)
	return nil
}

// RemoveValue deletes the entry at p. Removing an absent cell is a no-op.
func (s *Sheet) RemoveValue(p Pos) error {
	if !s.size.Contains(p) {
		return invalidPosition("remove value", p, s.size)
	}
	prev, had := s.cells[p]
	if !had {
		return nil
	}

	change := s.beginChange(ChangeRemove)
	delete(s.cells, p)
	s.version++
	change.pos = p
	change.before, change.hadBefore = prev, true
	s.commitChange(change)
	return nil
}

// AddRow appends one empty row. Stored cells are not touched.
func (s *Sheet) AddRow() {
	change := s.beginChange(ChangeAddRow)
	s.size.Rows++
	s.version++
	s.commitChange(change)
}

// AddCol appends one empty column. Stored cells are not touched.
func (s *Sheet) AddCol() {
	change := s.beginChange(ChangeAddCol)
	s.size.Cols++
	s.version++
	s.commitChange(change)
}

// Column returns the stored values of col in row order. Absent cells are
// omitted.
func (s *Sheet) Column(col int) []string {
	if col < 0 || col >= s.size.Cols {
		return nil
	}
	var out []string
	for row := 0; row < s.size.Rows; row++ {
		if v, ok := s.cells[Pos{Col: col, Row: row}]; ok {
			out = append(out, v)
		}
	}
	return out
}
