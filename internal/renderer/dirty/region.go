// Package dirty tracks invalidated screen regions for incremental
// rendering. Regions that overlap or touch are coalesced, and once too
// much of the screen is dirty the tracker falls back to a full redraw.
package dirty

import "github.com/dshills/glyphpaint/internal/geometry"

// adjacent returns true if two rects share an edge and can be merged
// into a rect covering exactly their union.
func adjacent(a, b geometry.Rect) bool {
	sameCols := a.Min.X == b.Min.X && a.Max.X == b.Max.X
	sameRows := a.Min.Y == b.Min.Y && a.Max.Y == b.Max.Y

	if sameCols && (a.Max.Y == b.Min.Y || b.Max.Y == a.Min.Y) {
		return true
	}
	if sameRows && (a.Max.X == b.Min.X || b.Max.X == a.Min.X) {
		return true
	}
	return false
}

// overlaps returns true if two rects share at least one cell.
func overlaps(a, b geometry.Rect) bool {
	return !a.Intersect(b).Empty()
}

// merge combines two rects when they overlap or are adjacent.
func merge(a, b geometry.Rect) (geometry.Rect, bool) {
	if !overlaps(a, b) && !adjacent(a, b) {
		return geometry.Rect{}, false
	}
	return a.Union(b), true
}

// area returns the number of cells in r.
func area(r geometry.Rect) int {
	return r.Width() * r.Height()
}
