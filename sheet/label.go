package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ColumnLabel returns the spreadsheet letter label of a 0-based column:
// A..Z, AA..AZ, and so on up to the XFD column limit.
func ColumnLabel(col int) (string, error) {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return "", fmt.Errorf("column label %d: %w", col, err)
	}
	return name, nil
}

// ColumnLabels returns the labels of the first n columns in order.
func ColumnLabels(n int) ([]string, error) {
	labels := make([]string, 0, max(n, 0))
	for col := 0; col < n; col++ {
		l, err := ColumnLabel(col)
		if err != nil {
			return labels, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// CellName returns the A1-style name of p, e.g. Pos{Col: 1, Row: 2} is "B3".
func CellName(p Pos) (string, error) {
	name, err := excelize.CoordinatesToCellName(p.Col+1, p.Row+1)
	if err != nil {
		return "", fmt.Errorf("cell name (%d,%d): %w", p.Col, p.Row, err)
	}
	return name, nil
}

// ParseCellName parses an A1-style name into a 0-based Pos. It does not check
// the result against any grid.
func ParseCellName(name string) (Pos, error) {
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return Pos{}, fmt.Errorf("parse cell name %q: %w", name, err)
	}
	return Pos{Col: col - 1, Row: row - 1}, nil
}
