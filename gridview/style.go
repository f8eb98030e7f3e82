package gridview

import "github.com/charmbracelet/lipgloss"

// Style controls the grid's rendering.
type Style struct {
	Header lipgloss.Style
	RowNum lipgloss.Style

	Cell        lipgloss.Style
	Cursor      lipgloss.Style
	CursorEdit  lipgloss.Style
	Sums        lipgloss.Style
	SumsLabel   lipgloss.Style
	CellName    lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default styles against r.
func NewStyle(r *lipgloss.Renderer) Style {
	dim := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Header:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		RowNum:      dim,
		Cell:        r.NewStyle(),
		Cursor:      r.NewStyle().Reverse(true),
		CursorEdit:  r.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231")),
		Sums:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		SumsLabel:   dim,
		CellName:    r.NewStyle().Bold(true),
		Status:      dim,
		StatusError: r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
