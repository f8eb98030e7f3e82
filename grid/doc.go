// Package grid mediates every read and write between an input source and a
// sheet.Sheet.
//
// A Controller owns the single selection cursor. Each effective state change
// produces exactly one Invalidation naming the display regions a renderer
// must re-derive; operations that leave the state unchanged produce none.
package grid
