package geometry

import "github.com/dshills/glyphpaint/internal/canvas"

// FloodFill replaces the 4-connected region of cells sharing the seed
// cell's glyph with newGlyph and newFg. Colors take no part in matching.
//
// Nothing happens when the seed is outside the surface or already holds
// newGlyph. Each visited cell is rewritten immediately, which removes it
// from the target set, so every cell is painted at most once. Returns the
// number of painted cells and their bounding rect.
func FloodFill(s Surface, x, y int, newGlyph rune, newFg canvas.Color) (int, Rect) {
	if !s.InBounds(x, y) {
		return 0, Rect{}
	}
	target := s.Get(x, y).Glyph
	if target == newGlyph {
		return 0, Rect{}
	}

	var (
		painted int
		bounds  Rect
	)
	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.InBounds(p.X, p.Y) || s.Get(p.X, p.Y).Glyph != target {
			continue
		}

		s.Set(p.X, p.Y, newGlyph, newFg, canvas.DefaultBackground)
		painted++
		bounds = bounds.Include(p)

		stack = append(stack,
			Point{X: p.X + 1, Y: p.Y},
			Point{X: p.X - 1, Y: p.Y},
			Point{X: p.X, Y: p.Y + 1},
			Point{X: p.X, Y: p.Y - 1},
		)
	}
	return painted, bounds
}
