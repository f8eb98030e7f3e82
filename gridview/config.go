package gridview

import (
	"github.com/olekukonko/ll"

	"github.com/iw2rmb/gridsheet/grid"
)

// DefaultColWidth is the cell width used when Config.ColWidth is zero.
const DefaultColWidth = 10

// Config configures the grid Model.
type Config struct {
	// Initial grid size; zero selects grid.DefaultCols/DefaultRows.
	Cols int
	Rows int

	// Rendering options.
	ColWidth    int
	ShowRowNums bool
	Style       Style

	// KeyMap defaults to DefaultKeyMap() when left zero.
	KeyMap KeyMap

	// Optional system clipboard for yank/paste. Nil disables both.
	Clipboard Clipboard

	// Forwarded to grid.Config.
	Logger *ll.Logger

	// OnInvalidate is called after the view has recorded an invalidation.
	OnInvalidate func(grid.Invalidation)
}

func (cfg Config) colWidth() int {
	if cfg.ColWidth <= 0 {
		return DefaultColWidth
	}
	return cfg.ColWidth
}
