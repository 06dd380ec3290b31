package renderer

import (
	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/geometry"
)

// Grid is the read-only view of the canvas the renderer needs.
type Grid interface {
	Size() (width, height int)
	Get(x, y int) canvas.Cell
}

// HighlightRule describes how the cursor cell is drawn.
type HighlightRule struct {
	// EmptyGlyph replaces the glyph when the cell under the cursor is empty.
	EmptyGlyph rune
	Fg         canvas.Color
	Bg         canvas.Color
}

// DefaultHighlight draws the cursor as black on white with '+' over
// empty cells.
func DefaultHighlight() HighlightRule {
	return HighlightRule{
		EmptyGlyph: '+',
		Fg:         canvas.ColorBlack,
		Bg:         canvas.ColorWhite,
	}
}

// Apply returns the highlighted form of c.
func (h HighlightRule) Apply(c canvas.Cell) canvas.Cell {
	glyph := c.Glyph
	if c.IsEmpty() {
		glyph = h.EmptyGlyph
	}
	return canvas.Cell{Glyph: glyph, Fg: h.Fg, Bg: h.Bg}
}

// invalidCell never equals a real cell; it marks poisoned frame entries.
var invalidCell = canvas.Cell{Glyph: -1}

// Frame is a fully resolved width x height matrix of display cells.
type Frame struct {
	width, height int
	cells         []canvas.Cell
}

// NewFrame creates a frame filled with empty cells.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  max(0, width),
		height: max(0, height),
	}
	f.cells = make([]canvas.Cell, f.width*f.height)
	empty := canvas.EmptyCell()
	for i := range f.cells {
		f.cells[i] = empty
	}
	return f
}

// RenderFrame resolves the grid and the cursor overlay into a new frame.
// The grid is only read.
func RenderFrame(g Grid, cursor geometry.Point, rule HighlightRule) *Frame {
	w, h := g.Size()
	f := &Frame{width: w, height: h, cells: make([]canvas.Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.cells[y*w+x] = g.Get(x, y)
		}
	}
	if f.inBounds(cursor.X, cursor.Y) {
		i := cursor.Y*w + cursor.X
		f.cells[i] = rule.Apply(f.cells[i])
	}
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// At returns the display cell at (x, y), or the empty cell out of range.
func (f *Frame) At(x, y int) canvas.Cell {
	if !f.inBounds(x, y) {
		return canvas.EmptyCell()
	}
	return f.cells[y*f.width+x]
}

// Set replaces the display cell at (x, y). Out-of-range writes are ignored.
func (f *Frame) Set(x, y int, c canvas.Cell) {
	if f.inBounds(x, y) {
		f.cells[y*f.width+x] = c
	}
}

// invalidate poisons every cell of r so the next diff reports it.
func (f *Frame) invalidate(r geometry.Rect) {
	r = r.Intersect(geometry.Rect{Max: geometry.Pt(f.width, f.height)})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f.cells[y*f.width+x] = invalidCell
		}
	}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}
