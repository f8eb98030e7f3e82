package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/sheet"
)

func newFilled(t *testing.T) *grid.Controller {
	t.Helper()
	c := grid.NewSession(grid.Config{Cols: 3, Rows: 3}).Controller()
	cells := map[sheet.Pos]string{
		{Col: 0, Row: 0}: "1",
		{Col: 0, Row: 1}: "2",
		{Col: 0, Row: 2}: "12",
		{Col: 1, Row: 0}: "apple",
		{Col: 2, Row: 1}: "0",
	}
	for p, v := range cells {
		if err := c.SelectCell(p); err != nil {
			t.Fatalf("SelectCell(%+v): %v", p, err)
		}
		if err := c.SetCursorValue(v); err != nil {
			t.Fatalf("SetCursorValue(%q): %v", v, err)
		}
	}
	return c
}

func TestPrint_HeaderBodyAndSums(t *testing.T) {
	c := newFilled(t)

	var buf bytes.Buffer
	if err := Print(&buf, c, Options{ShowRowNums: true}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"A", "B", "C", "apple", "15", SumMarker} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var footer string
	for _, l := range lines {
		if strings.Contains(l, SumMarker) {
			footer = l
		}
	}
	if footer == "" {
		t.Fatalf("no footer line:\n%s", out)
	}
	if !strings.Contains(footer, "15") || !strings.Contains(footer, "0") {
		t.Fatalf("footer: got %q, want sums 15 and 0", footer)
	}
	if strings.Contains(footer, "apple") {
		t.Fatalf("footer must not carry cell text: %q", footer)
	}
}

func TestPrint_RowNumbers(t *testing.T) {
	c := grid.NewSession(grid.Config{Cols: 1, Rows: 2}).Controller()

	var with, without bytes.Buffer
	if err := Print(&with, c, Options{ShowRowNums: true}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := Print(&without, c, Options{}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(with.String(), "2") {
		t.Fatalf("row numbers missing:\n%s", with.String())
	}
	if strings.Contains(without.String(), SumMarker) {
		t.Fatalf("sum marker printed without row numbers:\n%s", without.String())
	}
}

func TestPrint_ClipsWideCells(t *testing.T) {
	c := grid.NewSession(grid.Config{Cols: 1, Rows: 1}).Controller()
	_ = c.SetCursorValue("abcdefghijkl")

	var buf bytes.Buffer
	if err := Print(&buf, c, Options{MaxCellWidth: 5}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if strings.Contains(buf.String(), "abcdefghijkl") {
		t.Fatalf("cell not clipped:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "abcd…") {
		t.Fatalf("clipped cell missing:\n%s", buf.String())
	}
}

func TestSummary(t *testing.T) {
	c := grid.NewSession(grid.Config{Cols: 3, Rows: 2}).Controller()
	c.MoveCursor(1, 0)
	if err := c.SetCursorValue("7"); err != nil {
		t.Fatalf("SetCursorValue: %v", err)
	}
	if got, want := Summary(c), "3x2, 1 cells, cursor B1"; got != want {
		t.Fatalf("Summary: got %q, want %q", got, want)
	}
}
