// Package canvas provides the cell grid that owns all picture state.
//
// A Grid is a fixed-size rectangle of Cells addressed by (x, y) with the
// origin at the top-left corner. Reads outside the rectangle return the
// empty cell and writes outside it are ignored, so callers drawing near
// the edges never need to pre-check coordinates.
package canvas
