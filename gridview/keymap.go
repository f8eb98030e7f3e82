package gridview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings.
//
// Navigation and append bindings apply outside edit mode only; while editing,
// keys go to the formula bar except Commit, Cancel, Next and Prev.
//
// Outside edit mode an unbound rune starts editing with that rune as the new
// value. A bound rune (h, j, k, l, a, A, y, p) runs its binding instead, so a
// value starting with one of them is entered after Edit (enter).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Next, Prev            key.Binding

	Edit, Commit, Cancel key.Binding
	Clear                key.Binding

	AppendRow, AppendCol key.Binding

	Yank, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev cell")),

		Edit:   key.NewBinding(key.WithKeys("enter", "f2"), key.WithHelp("enter", "edit")),
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "revert")),
		Clear:  key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear")),

		AppendRow: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		AppendCol: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add col")),

		Yank:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
		Paste: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0 &&
		len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0
}

func (km KeyMap) normalHelp() []key.Binding {
	return []key.Binding{km.Edit, km.AppendRow, km.AppendCol, km.Clear, km.Yank, km.Paste}
}

func (km KeyMap) editHelp() []key.Binding {
	return []key.Binding{km.Commit, km.Cancel, km.Next}
}
