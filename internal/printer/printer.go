// Package printer renders a sheet as a plain-text table: column labels as
// the header, one line per row, and the column sums as the footer.
package printer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/tablewriter"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/internal/grapheme"
	"github.com/iw2rmb/gridsheet/sheet"
)

// SumMarker heads the footer row when row numbers are shown.
const SumMarker = "Σ"

// Options controls printed output.
type Options struct {
	// ShowRowNums prefixes each row with its 1-based number.
	ShowRowNums bool

	// MaxCellWidth clips cell text; zero leaves text unclipped.
	MaxCellWidth int
}

// Print writes the controller's grid to w.
func Print(w io.Writer, c *grid.Controller, opts Options) error {
	size := c.Size()
	labels := c.ColumnLabels()

	table := tablewriter.NewTable(w)

	header := make([]any, 0, size.Cols+1)
	if opts.ShowRowNums {
		header = append(header, "")
	}
	for _, l := range labels {
		header = append(header, l)
	}
	table.Header(header...)

	for row := 0; row < size.Rows; row++ {
		line := make([]string, 0, size.Cols+1)
		if opts.ShowRowNums {
			line = append(line, strconv.Itoa(row+1))
		}
		for col := 0; col < size.Cols; col++ {
			v, _ := c.Value(sheet.Pos{Col: col, Row: row})
			line = append(line, clip(v, opts.MaxCellWidth))
		}
		if err := table.Append(line); err != nil {
			return errors.Newf("append row %d", row+1).Wrap(err)
		}
	}

	footer := make([]any, 0, size.Cols+1)
	if opts.ShowRowNums {
		footer = append(footer, SumMarker)
	}
	for col := 0; col < size.Cols; col++ {
		footer = append(footer, c.SumLabel(col))
	}
	table.Footer(footer...)

	if err := table.Render(); err != nil {
		return errors.Newf("render %dx%d sheet", size.Cols, size.Rows).Wrap(err)
	}
	return nil
}

func clip(v string, width int) string {
	v = grapheme.Flatten(v)
	if width <= 0 {
		return v
	}
	return grapheme.Truncate(v, width)
}

// Summary returns a one-line description of the grid, e.g.
// "3x2, 1 cells, cursor B1".
func Summary(c *grid.Controller) string {
	size := c.Size()
	return fmt.Sprintf("%dx%d, %d cells, cursor %s", size.Cols, size.Rows, c.Sheet().Len(), c.CursorName())
}
