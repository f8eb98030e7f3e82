// Package sheet implements the pure, in-memory cell model for gridsheet.
//
// Coordinates are 0-based (Col, Row). Cells are sparse: a position with no
// stored entry holds the empty value. The grid only grows.
package sheet
