// Package gridview is a Bubble Tea component that renders a grid.Session:
// a formula bar bound to the cursor cell, a header of column labels, the
// cell body, and a footer of column sums.
//
// Every mutation goes through grid.Controller. The view keeps a cache per
// region and rebuilds only what each grid.Invalidation names.
package gridview
