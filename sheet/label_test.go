package sheet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColumnLabels_Sequence(t *testing.T) {
	got, err := ColumnLabels(6)
	if err != nil {
		t.Fatalf("ColumnLabels: %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C", "D", "E", "F"}, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	if got, _ := ColumnLabels(0); len(got) != 0 {
		t.Fatalf("ColumnLabels(0): got %v, want empty", got)
	}
}

func TestColumnLabel_PastZ(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for col, want := range cases {
		got, err := ColumnLabel(col)
		if err != nil {
			t.Fatalf("ColumnLabel(%d): %v", col, err)
		}
		if got != want {
			t.Fatalf("ColumnLabel(%d): got %q, want %q", col, got, want)
		}
	}
}

func TestColumnLabel_OutOfRange(t *testing.T) {
	if _, err := ColumnLabel(-1); err == nil {
		t.Fatalf("ColumnLabel(-1): expected error")
	}
	if _, err := ColumnLabel(16384); err == nil {
		t.Fatalf("ColumnLabel(16384): expected error past XFD")
	}
}

func TestCellName_RoundTrip(t *testing.T) {
	cases := []struct {
		p    Pos
		name string
	}{
		{p: Pos{Col: 0, Row: 0}, name: "A1"},
		{p: Pos{Col: 1, Row: 2}, name: "B3"},
		{p: Pos{Col: 26, Row: 9}, name: "AA10"},
	}
	for _, tc := range cases {
		name, err := CellName(tc.p)
		if err != nil {
			t.Fatalf("CellName(%v): %v", tc.p, err)
		}
		if name != tc.name {
			t.Fatalf("CellName(%v): got %q, want %q", tc.p, name, tc.name)
		}
		p, err := ParseCellName(tc.name)
		if err != nil {
			t.Fatalf("ParseCellName(%q): %v", tc.name, err)
		}
		if p != tc.p {
			t.Fatalf("ParseCellName(%q): got %v, want %v", tc.name, p, tc.p)
		}
	}
}

func TestParseCellName_Invalid(t *testing.T) {
	for _, name := range []string{"", "1A", "??"} {
		if _, err := ParseCellName(name); err == nil {
			t.Fatalf("ParseCellName(%q): expected error", name)
		}
	}
}
