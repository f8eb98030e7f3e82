package grid

import "github.com/iw2rmb/gridsheet/sheet"

// Session owns one sheet and the controller bound to it.
type Session struct {
	sheet *sheet.Sheet
	ctrl  *Controller
}

// NewSession builds an empty sheet sized by cfg and a controller over it.
// Negative sizes yield an empty grid.
func NewSession(cfg Config) *Session {
	cols, rows := cfg.size()
	s := sheet.New(sheet.Size{Cols: cols, Rows: rows})
	return &Session{sheet: s, ctrl: NewController(s, cfg)}
}

func (s *Session) Sheet() *sheet.Sheet { return s.sheet }

func (s *Session) Controller() *Controller { return s.ctrl }
