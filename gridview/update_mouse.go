package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet/sheet"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Only left presses select cells.
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	p, ok := m.screenToCell(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.status, m.statusErr = "", false
	if m.editing {
		m = m.stopEdit()
	}
	if err := m.ctrl.SelectCell(p); err != nil {
		m.fail(err)
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

// screenToCell maps component-local mouse coordinates to a cell position.
//
// ok is false for clicks outside the body rows region or inside the row
// number gutter. The returned position is not bounds-checked against the
// grid: clicks past the last row or column yield off-grid positions, which
// SelectCell rejects.
func (m Model) screenToCell(x, y int) (sheet.Pos, bool) {
	if x < 0 || y < bodyTop {
		return sheet.Pos{}, false
	}
	bodyRows := len(m.rows)
	if m.viewport.Height > 0 {
		bodyRows = m.viewport.Height
	}
	if y >= bodyTop+bodyRows {
		return sheet.Pos{}, false
	}

	gw := m.gutterWidth()
	if x < gw {
		return sheet.Pos{}, false
	}
	w := m.cfg.colWidth()
	col := m.colOff + (x-gw)/(w+1)
	row := m.viewport.YOffset + (y - bodyTop)
	return sheet.Pos{Col: col, Row: row}, true
}
