package geometry

import "fmt"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp returns the point limited to [0,width-1]x[0,height-1].
func (p Point) Clamp(width, height int) Point {
	return Point{
		X: max(0, min(width-1, p.X)),
		Y: max(0, min(height-1, p.Y)),
	}
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a rectangular set of cells. Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the smallest rect containing both points.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X) + 1, Y: max(a.Y, b.Y) + 1},
	}
}

// Empty returns true if the rect contains no cells.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rect{
		Min: Point{X: min(r.Min.X, other.Min.X), Y: min(r.Min.Y, other.Min.Y)},
		Max: Point{X: max(r.Max.X, other.Max.X), Y: max(r.Max.Y, other.Max.Y)},
	}
}

// Include grows the rect to cover p.
func (r Rect) Include(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p.Add(1, 1)})
}

// Intersect returns the overlap of two rects (empty when disjoint).
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Min: Point{X: max(r.Min.X, other.Min.X), Y: max(r.Min.Y, other.Min.Y)},
		Max: Point{X: min(r.Max.X, other.Max.X), Y: min(r.Max.Y, other.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}
