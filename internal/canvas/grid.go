package canvas

import "fmt"

// Grid is a fixed-size rectangle of cells stored row-major.
type Grid struct {
	width, height int
	cells         []Cell
}

// New creates a grid filled with empty cells.
// Returns ErrInvalidDimension if width or height is not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Clear()
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns width and height.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, glyph rune, fg, bg Color) {
	g.SetCell(x, y, Cell{Glyph: glyph, Fg: fg, Bg: bg})
}

// SetCell writes a whole cell. Out-of-range coordinates are ignored.
func (g *Grid) SetCell(x, y int, cell Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = cell
}

// Get returns the cell at (x, y), or the empty cell when out of range.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return EmptyCell()
	}
	return g.cells[y*g.width+x]
}

// Clear resets every cell to the empty cell.
func (g *Grid) Clear() {
	empty := EmptyCell()
	for i := range g.cells {
		g.cells[i] = empty
	}
}

// Toggle paints an empty cell with the given glyph and colors, or resets
// a painted cell to the empty cell. Clearing always uses the default
// colors, never the given background.
func (g *Grid) Toggle(x, y int, glyph rune, fg, bg Color) {
	if !g.InBounds(x, y) {
		return
	}
	if g.Get(x, y).IsEmpty() {
		g.Set(x, y, glyph, fg, bg)
		return
	}
	g.SetCell(x, y, EmptyCell())
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]Cell, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// Glyphs returns the glyph matrix indexed [y][x].
func (g *Grid) Glyphs() [][]rune {
	out := make([][]rune, g.height)
	for y := range out {
		out[y] = make([]rune, g.width)
		for x := range out[y] {
			out[y][x] = g.cells[y*g.width+x].Glyph
		}
	}
	return out
}

// Equal returns true if both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equals(other.cells[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
