package grid

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/olekukonko/ll"

	"github.com/iw2rmb/gridsheet/sheet"
)

// Controller owns the selection cursor and routes mutations to a sheet.
//
// It is not safe for concurrent use.
type Controller struct {
	sheet  *sheet.Sheet
	cursor sheet.Pos

	// version counts emitted invalidations: sheet mutations and cursor moves.
	version uint64

	log          *ll.Logger
	onInvalidate func(Invalidation)
}

// NewController returns a controller over s with the cursor at (0,0).
// Only cfg.Logger and cfg.OnInvalidate are read.
func NewController(s *sheet.Sheet, cfg Config) *Controller {
	return &Controller{
		sheet:        s,
		log:          resolveLogger(cfg.Logger),
		onInvalidate: cfg.OnInvalidate,
	}
}

func (c *Controller) Sheet() *sheet.Sheet { return c.sheet }

// Cursor returns the selected position.
func (c *Controller) Cursor() sheet.Pos { return c.cursor }

// Version increases by one for every emitted Invalidation.
func (c *Controller) Version() uint64 { return c.version }

// SetOnInvalidate replaces the invalidation hook. A nil fn disables it.
func (c *Controller) SetOnInvalidate(fn func(Invalidation)) { c.onInvalidate = fn }

// SelectCell moves the cursor to p. Positions outside the grid are rejected
// with sheet.ErrInvalidPosition. Selecting the current cell is a no-op.
func (c *Controller) SelectCell(p sheet.Pos) error {
	if !c.sheet.Contains(p) {
		err := &sheet.PositionError{Op: "select cell", Pos: p, Size: c.sheet.Size()}
		c.log.Warnf("%v", err)
		return err
	}
	c.moveTo(p)
	return nil
}

// MoveCursor shifts the cursor by (dCol, dRow), clamped to the grid. It
// reports whether the cursor moved.
func (c *Controller) MoveCursor(dCol, dRow int) bool {
	size := c.sheet.Size()
	if size.Cols == 0 || size.Rows == 0 {
		return false
	}
	next := sheet.ClampPos(sheet.Pos{Col: c.cursor.Col + dCol, Row: c.cursor.Row + dRow}, size)
	return c.moveTo(next)
}

func (c *Controller) moveTo(p sheet.Pos) bool {
	if p == c.cursor {
		return false
	}
	c.cursor = p
	c.log.Infof("cursor -> %s", c.CursorName())
	c.emit(Invalidation{Regions: RegionFormula})
	return true
}

// CursorValue returns the stored value at the cursor, or "" when absent.
func (c *Controller) CursorValue() string {
	v, _ := c.sheet.Value(c.cursor)
	return v
}

// SetCursorValue writes v to the cursor cell.
//
// An empty v clears a cell that holds a value; on an absent cell it does
// nothing and emits nothing. Any other v is stored verbatim.
func (c *Controller) SetCursorValue(v string) error {
	before := c.sheet.Version()

	var err error
	if v == "" {
		if !c.sheet.Contains(c.cursor) {
			err = &sheet.PositionError{Op: "clear value", Pos: c.cursor, Size: c.sheet.Size()}
		} else if _, ok := c.sheet.Value(c.cursor); ok {
			err = c.sheet.RemoveValue(c.cursor)
		}
	} else {
		err = c.sheet.SetValue(c.cursor, v)
	}
	if err != nil {
		c.log.Warnf("%v", err)
		return err
	}
	if c.sheet.Version() == before {
		return nil
	}

	ch, _ := c.sheet.LastChange()
	c.log.Infof("%s", describeChange(ch))
	c.emit(Invalidation{
		Regions:    RegionBody | RegionSums,
		Cell:       ch.Pos,
		CellScoped: true,
	})
	return nil
}

// GrowRow appends one empty row.
func (c *Controller) GrowRow() {
	c.sheet.AddRow()
	ch, _ := c.sheet.LastChange()
	c.log.Infof("%s", describeChange(ch))
	c.emit(Invalidation{Regions: RegionBody})
}

// GrowCol appends one empty column.
func (c *Controller) GrowCol() {
	c.sheet.AddCol()
	ch, _ := c.sheet.LastChange()
	c.log.Infof("%s", describeChange(ch))
	c.emit(Invalidation{Regions: RegionHeader | RegionBody | RegionSums})
}

// describeChange renders ch for the debug log, e.g.
// `v3 set A1: <absent> -> "7"` or `v4 add-row: 10x10 -> 10x11`.
func describeChange(ch sheet.Change) string {
	if !ch.CellChanged() {
		return fmt.Sprintf("v%d %s: %dx%d -> %dx%d", ch.VersionAfter, ch.Kind,
			ch.SizeBefore.Cols, ch.SizeBefore.Rows, ch.SizeAfter.Cols, ch.SizeAfter.Rows)
	}
	name, err := sheet.CellName(ch.Pos)
	if err != nil {
		name = fmt.Sprintf("(%d,%d)", ch.Pos.Col, ch.Pos.Row)
	}
	return fmt.Sprintf("v%d %s %s: %s -> %s", ch.VersionAfter, ch.Kind, name,
		quoteValue(ch.Before, ch.HadBefore), quoteValue(ch.After, ch.HasAfter))
}

func quoteValue(v string, ok bool) string {
	if !ok {
		return "<absent>"
	}
	return strconv.Quote(v)
}

func (c *Controller) emit(inv Invalidation) {
	c.version++
	inv.Version = c.version
	if c.onInvalidate != nil {
		c.onInvalidate(inv)
	}
}

func (c *Controller) Size() sheet.Size { return c.sheet.Size() }

func (c *Controller) Value(p sheet.Pos) (string, bool) { return c.sheet.Value(p) }

func (c *Controller) ColumnSum(col int) (*big.Int, bool) { return c.sheet.ColumnSum(col) }

func (c *Controller) SumLabel(col int) string { return c.sheet.SumLabel(col) }

// ColumnLabel returns the letter label of col; out-of-range columns get "".
func (c *Controller) ColumnLabel(col int) string {
	l, err := sheet.ColumnLabel(col)
	if err != nil {
		return ""
	}
	return l
}

// ColumnLabels returns the labels of every current column.
func (c *Controller) ColumnLabels() []string {
	labels, _ := sheet.ColumnLabels(c.sheet.Cols())
	return labels
}

// CursorName returns the A1-style name of the cursor.
func (c *Controller) CursorName() string {
	name, err := sheet.CellName(c.cursor)
	if err != nil {
		return ""
	}
	return name
}
