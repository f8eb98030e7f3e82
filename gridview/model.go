package gridview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/ll"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/internal/grapheme"
	"github.com/iw2rmb/gridsheet/sheet"
)

// chromeLines counts the rows around the body: formula bar, header, sums and
// status line.
const chromeLines = 4

// bodyTop is the screen row of the first body line.
const bodyTop = 2

// Model is a Bubble Tea component that renders and edits a grid session.
type Model struct {
	cfg  Config
	sess *grid.Session
	ctrl *grid.Controller
	log  *ll.Logger

	pending *pending

	formula textinput.Model
	editing bool
	// Value held by the cursor cell when editing began.
	editOrig    string
	editOrigSet bool

	viewport viewport.Model
	width    int
	height   int
	colOff   int

	header    string
	sumLabels []string
	rows      []string
	stats     renderStats

	lastCursor  sheet.Pos
	lastSize    sheet.Size
	lastEditing bool

	status    string
	statusErr bool
}

// renderStats counts region rebuilds.
type renderStats struct {
	header int
	sums   int
	rows   int
}

// pending collects invalidations between syncs. It is shared by every copy
// of a Model so the controller hook can reach it.
type pending struct {
	full  grid.Region
	cells []sheet.Pos
}

func (p *pending) record(inv grid.Invalidation) {
	if inv.CellScoped {
		p.cells = append(p.cells, inv.Cell)
		p.full |= inv.Regions &^ (grid.RegionBody | grid.RegionSums)
		return
	}
	p.full |= inv.Regions
}

func (p *pending) take() (grid.Region, []sheet.Pos) {
	full, cells := p.full, p.cells
	p.full, p.cells = 0, nil
	return full, cells
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}

	p := &pending{}
	hook := cfg.OnInvalidate
	sess := grid.NewSession(grid.Config{
		Cols:   cfg.Cols,
		Rows:   cfg.Rows,
		Logger: cfg.Logger,
		OnInvalidate: func(inv grid.Invalidation) {
			p.record(inv)
			if hook != nil {
				hook(inv)
			}
		},
	})

	ti := textinput.New()
	ti.Prompt = "ƒx "

	m := Model{
		cfg:      cfg,
		sess:     sess,
		ctrl:     sess.Controller(),
		log:      resolveLogger(cfg.Logger),
		pending:  p,
		formula:  ti,
		viewport: viewport.New(0, 0),
	}
	m.rebuildAll()
	return m
}

func resolveLogger(l *ll.Logger) *ll.Logger {
	if l != nil {
		return l
	}
	l = ll.New("gridview")
	l.Disable()
	return l
}

func (m Model) Session() *grid.Session { return m.sess }

func (m Model) Controller() *grid.Controller { return m.ctrl }

// Editing reports whether the formula bar has keyboard focus.
func (m Model) Editing() bool { return m.editing }

// Status returns the current status message, if any.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeLines, 0)
	m.formula.Width = max(width-cellNameWidth-grapheme.Width(m.formula.Prompt)-2, 0)

	m.followCursor()
	m.rebuildAll()
	return m
}

// Refresh applies invalidations recorded since the last Update. Hosts call it
// after mutating the controller directly.
func (m Model) Refresh() Model {
	m.sync()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.editing {
			m.formula, cmd = m.formula.Update(msg)
		}
	}
	m.sync()
	return m, cmd
}

func (m Model) View() string {
	lines := []string{
		m.formulaLine(),
		m.header,
		m.bodyView(),
		m.sumsLine(),
		m.statusLine(),
	}
	return strings.Join(lines, "\n")
}

func (m Model) bodyView() string {
	if m.viewport.Height > 0 {
		return m.viewport.View()
	}
	return strings.Join(m.rows, "\n")
}

// sync rebuilds the regions named by pending invalidations and keeps the
// cursor in view.
func (m *Model) sync() {
	full, cells := m.pending.take()
	cur := m.ctrl.Cursor()
	size := m.ctrl.Size()
	moved := cur != m.lastCursor
	toggled := m.editing != m.lastEditing

	if size.Cols != m.lastSize.Cols {
		full |= grid.RegionHeader | grid.RegionBody | grid.RegionSums
	}
	if size.Rows != m.lastSize.Rows {
		full |= grid.RegionBody
		// The row-number gutter widens at 10, 100, ... rows.
		if m.cfg.ShowRowNums && digits(size.Rows) != digits(m.lastSize.Rows) {
			full |= grid.RegionHeader
		}
	}
	if full == 0 && len(cells) == 0 && !moved && !toggled {
		return
	}

	if m.followCursor() {
		full |= grid.RegionHeader | grid.RegionBody | grid.RegionSums
	}

	if full.Has(grid.RegionHeader) {
		m.renderHeader()
	}
	if full.Has(grid.RegionSums) {
		m.renderAllSums()
	} else {
		for _, p := range cells {
			m.renderSum(p.Col)
		}
	}

	if full.Has(grid.RegionBody) {
		m.renderAllRows()
	} else {
		dirty := make(map[int]struct{}, len(cells)+2)
		for _, p := range cells {
			dirty[p.Row] = struct{}{}
		}
		if moved {
			dirty[m.lastCursor.Row] = struct{}{}
		}
		if moved || toggled {
			dirty[cur.Row] = struct{}{}
		}
		for row := range dirty {
			m.renderRowAt(row)
		}
	}

	if !m.editing {
		m.formula.SetValue(m.ctrl.CursorValue())
		m.formula.CursorEnd()
	}

	m.lastCursor = cur
	m.lastSize = size
	m.lastEditing = m.editing
	m.viewport.SetContent(strings.Join(m.rows, "\n"))
	m.followCursorRow()
}

func (m *Model) rebuildAll() {
	m.pending.take()
	m.renderHeader()
	m.renderAllSums()
	m.renderAllRows()
	if !m.editing {
		m.formula.SetValue(m.ctrl.CursorValue())
		m.formula.CursorEnd()
	}
	m.lastCursor = m.ctrl.Cursor()
	m.lastSize = m.ctrl.Size()
	m.lastEditing = m.editing
	m.viewport.SetContent(strings.Join(m.rows, "\n"))
	m.followCursorRow()
}

// followCursor adjusts the first visible column so the cursor column is on
// screen. It reports whether the offset changed.
func (m *Model) followCursor() bool {
	cur := m.ctrl.Cursor()
	cols := m.ctrl.Size().Cols
	n := m.visibleColCount()

	off := m.colOff
	if cur.Col < off {
		off = cur.Col
	}
	if n > 0 && cur.Col >= off+n {
		off = cur.Col - n + 1
	}
	off = max(min(off, cols-1), 0)
	if off == m.colOff {
		return false
	}
	m.colOff = off
	return true
}

func (m *Model) followCursorRow() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	row := m.ctrl.Cursor().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
