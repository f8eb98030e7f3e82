package gridview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status, m.statusErr = "", false
	if m.editing {
		return m.updateEditKey(msg)
	}

	// Paste events start an edit with the pasted text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.startEdit(string(msg.Runes))
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.ctrl.MoveCursor(-1, 0)
	case key.Matches(msg, km.Right):
		m.ctrl.MoveCursor(1, 0)
	case key.Matches(msg, km.Up):
		m.ctrl.MoveCursor(0, -1)
	case key.Matches(msg, km.Down):
		m.ctrl.MoveCursor(0, 1)
	case key.Matches(msg, km.Next):
		m.ctrl.MoveCursor(1, 0)
	case key.Matches(msg, km.Prev):
		m.ctrl.MoveCursor(-1, 0)

	case key.Matches(msg, km.Edit):
		return m.startEdit(m.ctrl.CursorValue())
	case key.Matches(msg, km.Clear):
		m.setCursorValue("")

	case key.Matches(msg, km.AppendRow):
		m.ctrl.GrowRow()
	case key.Matches(msg, km.AppendCol):
		m.ctrl.GrowCol()

	case key.Matches(msg, km.Yank):
		m.yank()
	case key.Matches(msg, km.Paste):
		m.paste()

	default:
		// Typing an unbound rune replaces the cell value. Bound runes were
		// handled above; values starting with them need Edit first.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			return m.startEdit(string(msg.Runes))
		}
	}
	return m, nil
}

func (m Model) updateEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Commit):
		m = m.stopEdit()
		m.ctrl.MoveCursor(0, 1)
		return m, nil
	case key.Matches(msg, km.Next):
		m = m.stopEdit()
		m.ctrl.MoveCursor(1, 0)
		return m, nil
	case key.Matches(msg, km.Prev):
		m = m.stopEdit()
		m.ctrl.MoveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, km.Cancel):
		if m.editOrigSet {
			m.setCursorValue(m.editOrig)
		} else {
			m.setCursorValue("")
		}
		return m.stopEdit(), nil
	}

	prev := m.formula.Value()
	var cmd tea.Cmd
	m.formula, cmd = m.formula.Update(msg)
	if v := m.formula.Value(); v != prev {
		m.setCursorValue(v)
	}
	return m, cmd
}

// startEdit focuses the formula bar holding text. A text different from the
// stored value is written through immediately.
func (m Model) startEdit(text string) (Model, tea.Cmd) {
	cur := m.ctrl.Cursor()
	if !m.ctrl.Size().Contains(cur) {
		return m, nil
	}
	m.editOrig, m.editOrigSet = m.ctrl.Value(cur)
	m.editing = true
	m.formula.SetValue(text)
	m.formula.CursorEnd()
	cmd := m.formula.Focus()
	if text != m.ctrl.CursorValue() {
		m.setCursorValue(text)
	}
	return m, cmd
}

func (m Model) stopEdit() Model {
	m.editing = false
	m.editOrig, m.editOrigSet = "", false
	m.formula.Blur()
	return m
}

func (m *Model) setCursorValue(v string) {
	if err := m.ctrl.SetCursorValue(v); err != nil {
		m.fail(err)
	}
}

func (m *Model) yank() {
	if m.cfg.Clipboard == nil {
		return
	}
	v := m.ctrl.CursorValue()
	if err := m.cfg.Clipboard.WriteText(v); err != nil {
		m.fail(err)
		return
	}
	m.status = "yanked " + m.ctrl.CursorName()
}

func (m *Model) paste() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.fail(err)
		return
	}
	m.setCursorValue(s)
}

func (m *Model) fail(err error) {
	m.log.Warnf("%v", err)
	m.status, m.statusErr = err.Error(), true
}
