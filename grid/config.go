package grid

import "github.com/olekukonko/ll"

const (
	DefaultCols = 10
	DefaultRows = 10
)

// Config configures a Session.
type Config struct {
	// Initial grid size. Zero selects DefaultCols/DefaultRows.
	Cols int
	Rows int

	// Logger receives mutation and rejection records. Nil disables logging.
	Logger *ll.Logger

	// OnInvalidate is called synchronously after every effective state
	// change, before the mutating call returns.
	OnInvalidate func(Invalidation)
}

func (cfg Config) size() (cols, rows int) {
	cols, rows = cfg.Cols, cfg.Rows
	if cols == 0 {
		cols = DefaultCols
	}
	if rows == 0 {
		rows = DefaultRows
	}
	return cols, rows
}

func resolveLogger(l *ll.Logger) *ll.Logger {
	if l != nil {
		return l
	}
	l = ll.New("grid")
	l.Disable()
	return l
}
