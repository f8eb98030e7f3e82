package gridview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/gridsheet/internal/grapheme"
	"github.com/iw2rmb/gridsheet/sheet"
)

// sumMarker labels the sums row in the row-number gutter.
const sumMarker = "Σ"

// cellNameWidth is the formula bar slot for the cursor name ("B3", "AA100").
const cellNameWidth = 6

func (m Model) gutterWidth() int {
	if !m.cfg.ShowRowNums {
		return 0
	}
	return digits(m.ctrl.Size().Rows) + 1
}

func digits(n int) int {
	return len(strconv.Itoa(max(n, 1)))
}

// visibleColCount returns how many columns fit the current width. Zero width
// means unbounded.
func (m Model) visibleColCount() int {
	cols := m.ctrl.Size().Cols
	if m.width <= 0 {
		return cols
	}
	w := m.cfg.colWidth()
	avail := m.width - m.gutterWidth()
	n := max((avail+1)/(w+1), 1)
	return min(n, cols)
}

func (m Model) visibleCols() (first, end int) {
	cols := m.ctrl.Size().Cols
	first = min(m.colOff, cols)
	end = min(first+m.visibleColCount(), cols)
	return first, end
}

func (m Model) gutter(text string) string {
	gw := m.gutterWidth()
	if gw == 0 {
		return ""
	}
	return grapheme.Fit(text, gw-1, grapheme.AlignRight) + " "
}

func (m *Model) renderHeader() {
	m.stats.header++
	w := m.cfg.colWidth()
	first, end := m.visibleCols()

	var sb strings.Builder
	sb.WriteString(m.cfg.Style.RowNum.Render(m.gutter("")))
	for col := first; col < end; col++ {
		if col > first {
			sb.WriteByte(' ')
		}
		label := m.ctrl.ColumnLabel(col)
		sb.WriteString(m.cfg.Style.Header.Render(grapheme.Fit(label, w, grapheme.AlignLeft)))
	}
	m.header = sb.String()
}

func (m *Model) renderAllSums() {
	cols := m.ctrl.Size().Cols
	m.sumLabels = m.sumLabels[:0]
	for col := 0; col < cols; col++ {
		m.sumLabels = append(m.sumLabels, m.ctrl.SumLabel(col))
	}
	m.stats.sums += cols
}

func (m *Model) renderSum(col int) {
	if col < 0 || col >= len(m.sumLabels) {
		return
	}
	m.sumLabels[col] = m.ctrl.SumLabel(col)
	m.stats.sums++
}

func (m Model) sumsLine() string {
	w := m.cfg.colWidth()
	first, end := m.visibleCols()

	var sb strings.Builder
	sb.WriteString(m.cfg.Style.SumsLabel.Render(m.gutter(sumMarker)))
	for col := first; col < end; col++ {
		if col > first {
			sb.WriteByte(' ')
		}
		label := ""
		if col < len(m.sumLabels) {
			label = m.sumLabels[col]
		}
		sb.WriteString(m.cfg.Style.Sums.Render(grapheme.Fit(label, w, grapheme.AlignRight)))
	}
	return sb.String()
}

func (m *Model) renderAllRows() {
	rows := m.ctrl.Size().Rows
	if cap(m.rows) < rows {
		m.rows = make([]string, rows)
	}
	m.rows = m.rows[:rows]
	for row := 0; row < rows; row++ {
		m.rows[row] = m.renderRow(row)
	}
}

func (m *Model) renderRowAt(row int) {
	if row < 0 || row >= len(m.rows) {
		return
	}
	m.rows[row] = m.renderRow(row)
}

func (m *Model) renderRow(row int) string {
	m.stats.rows++
	w := m.cfg.colWidth()
	cur := m.ctrl.Cursor()
	first, end := m.visibleCols()

	var sb strings.Builder
	sb.WriteString(m.cfg.Style.RowNum.Render(m.gutter(strconv.Itoa(row + 1))))
	for col := first; col < end; col++ {
		if col > first {
			sb.WriteByte(' ')
		}
		p := sheet.Pos{Col: col, Row: row}
		v, _ := m.ctrl.Value(p)
		align := grapheme.AlignLeft
		if sheet.IsIntegerLike(v) {
			align = grapheme.AlignRight
		}
		st := m.cfg.Style.Cell
		if p == cur {
			st = m.cfg.Style.Cursor
			if m.editing {
				st = m.cfg.Style.CursorEdit
			}
		}
		sb.WriteString(st.Render(grapheme.Fit(v, w, align)))
	}
	return sb.String()
}

func (m Model) formulaLine() string {
	name := m.cfg.Style.CellName.Render(grapheme.Fit(m.ctrl.CursorName(), cellNameWidth, grapheme.AlignLeft))
	line := name + " " + m.formula.View()
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "")
	}
	return line
}

func (m Model) statusLine() string {
	text := m.status
	st := m.cfg.Style.Status
	if m.statusErr {
		st = m.cfg.Style.StatusError
	}
	if text == "" {
		bindings := m.cfg.KeyMap.normalHelp()
		if m.editing {
			bindings = m.cfg.KeyMap.editHelp()
		}
		text = helpText(bindings)
	}
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, grapheme.Ellipsis)
	}
	return st.Render(text)
}

func helpText(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
