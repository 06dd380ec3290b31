package renderer

import (
	"iter"

	"github.com/dshills/glyphpaint/internal/canvas"
)

// Change is a display cell that must be redrawn.
type Change struct {
	X, Y int
	Cell canvas.Cell
}

// Diff lazily yields, in row-major order, every cell of curr whose
// display value differs from prev. When prev is nil or has a different
// size every cell of curr is yielded.
func Diff(prev, curr *Frame) iter.Seq[Change] {
	return func(yield func(Change) bool) {
		if curr == nil {
			return
		}
		full := prev == nil || prev.width != curr.width || prev.height != curr.height

		for y := 0; y < curr.height; y++ {
			row := y * curr.width
			for x := 0; x < curr.width; x++ {
				c := curr.cells[row+x]
				if !full && prev.cells[row+x].Equals(c) {
					continue
				}
				if !yield(Change{X: x, Y: y, Cell: c}) {
					return
				}
			}
		}
	}
}
