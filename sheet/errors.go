package sheet

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition reports an operation that targets a cell outside the
// current grid. The grid is never grown or clamped implicitly.
var ErrInvalidPosition = errors.New("invalid position")

// PositionError carries the rejected operation, position, and the grid size
// at the time of the call.
type PositionError struct {
	Op   string
	Pos  Pos
	Size Size
}

func (e *PositionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s (%d,%d) outside %dx%d grid",
		e.Op, ErrInvalidPosition.Error(), e.Pos.Col, e.Pos.Row, e.Size.Cols, e.Size.Rows)
}

func (e *PositionError) Unwrap() error { return ErrInvalidPosition }

func invalidPosition(op string, p Pos, size Size) error {
	return &PositionError{Op: op, Pos: p, Size: size}
}
