// Package geometry provides the drawing primitives that operate on a
// canvas: integer Bresenham lines and 4-connected flood fill.
//
// Both primitives write through Surface.Set, so coordinates outside the
// canvas are clipped by the canvas itself.
package geometry

import "github.com/dshills/glyphpaint/internal/canvas"

// Surface is the part of a canvas the primitives need.
// *canvas.Grid satisfies it.
type Surface interface {
	Get(x, y int) canvas.Cell
	Set(x, y int, glyph rune, fg, bg canvas.Color)
	InBounds(x, y int) bool
}
