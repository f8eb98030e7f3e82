package sheet

// Pos addresses a cell by (col, row). Col and Row are 0-based.
type Pos struct {
	Col int
	Row int
}

// Size is the current grid extent in columns and rows.
type Size struct {
	Cols int
	Rows int
}

// Contains reports whether p lies in [0,Cols)x[0,Rows).
func (s Size) Contains(p Pos) bool {
	return p.Col >= 0 && p.Col < s.Cols && p.Row >= 0 && p.Row < s.Rows
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into a grid of the given size.
//
// The returned Pos always satisfies:
// - 0 <= Col < size.Cols (with Cols treated as at least 1)
// - 0 <= Row < size.Rows (with Rows treated as at least 1)
//
// For an empty grid the result is (0,0), which is not on-grid; callers that
// need a valid cell must check Size.Contains.
func ClampPos(p Pos, size Size) Pos {
	cols, rows := size.Cols, size.Rows
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return Pos{
		Col: clampInt(p.Col, 0, cols-1),
		Row: clampInt(p.Row, 0, rows-1),
	}
}
