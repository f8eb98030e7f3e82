package grid

import (
	"strings"

	"github.com/iw2rmb/gridsheet/sheet"
)

// Region is a bit set of display regions a renderer keeps.
type Region uint8

const (
	// RegionHeader is the row of column labels.
	RegionHeader Region = 1 << iota
	// RegionBody is the cell grid.
	RegionBody
	// RegionSums is the per-column aggregate row.
	RegionSums
	// RegionFormula is the entry widget bound to the cursor.
	RegionFormula
)

var regionNames = []struct {
	r    Region
	name string
}{
	{RegionHeader, "header"},
	{RegionBody, "body"},
	{RegionSums, "sums"},
	{RegionFormula, "formula"},
}

// Has reports whether every bit of o is set in r.
func (r Region) Has(o Region) bool { return o != 0 && r&o == o }

func (r Region) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	for _, rn := range regionNames {
		if r&rn.r != 0 {
			parts = append(parts, rn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Invalidation tells a renderer which regions are stale after a state change.
//
// When CellScoped is set, RegionBody is limited to the entry at Cell and
// RegionSums to the aggregate of Cell.Col. Otherwise the named regions are
// stale as a whole.
type Invalidation struct {
	Version    uint64
	Regions    Region
	Cell       sheet.Pos
	CellScoped bool
}
