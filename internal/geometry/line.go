package geometry

import (
	"iter"

	"github.com/dshills/glyphpaint/internal/canvas"
)

// Line yields the cells of the integer line from start to end, both
// inclusive. Exactly 1+|dx|+|dy| points are produced: every step moves
// along one axis only, so diagonal runs come out as staircases.
func Line(start, end Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := abs(end.X - start.X)
		dy := abs(end.Y - start.Y)
		xInc := 1
		if end.X <= start.X {
			xInc = -1
		}
		yInc := 1
		if end.Y <= start.Y {
			yInc = -1
		}

		x, y := start.X, start.Y
		e := dx - dy
		dx *= 2
		dy *= 2

		for n := 1 + dx/2 + dy/2; n > 0; n-- {
			if !yield(Point{X: x, Y: y}) {
				return
			}
			if e > 0 {
				x += xInc
				e -= dy
			} else {
				y += yInc
				e += dx
			}
		}
	}
}

// DrawLine paints the line from start to end with glyph and fg on the
// default background. Returns the bounding rect of the touched points.
func DrawLine(s Surface, start, end Point, glyph rune, fg canvas.Color) Rect {
	for p := range Line(start, end) {
		s.Set(p.X, p.Y, glyph, fg, canvas.DefaultBackground)
	}
	return RectFromPoints(start, end)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
