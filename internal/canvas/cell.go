package canvas

// EmptyGlyph is the sentinel glyph of an unpainted cell.
const EmptyGlyph = ' '

// Default colors of an unpainted cell.
var (
	DefaultForeground = ColorWhite
	DefaultBackground = ColorBlack
)

// Cell is a single grid position: a glyph and its colors.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// EmptyCell returns the default unpainted cell.
func EmptyCell() Cell {
	return Cell{
		Glyph: EmptyGlyph,
		Fg:    DefaultForeground,
		Bg:    DefaultBackground,
	}
}

// NewCell creates a cell with the given glyph and colors.
func NewCell(glyph rune, fg, bg Color) Cell {
	return Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// IsEmpty returns true if the cell holds the empty glyph.
func (c Cell) IsEmpty() bool {
	return c.Glyph == EmptyGlyph
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Glyph == other.Glyph &&
		c.Fg.Equals(other.Fg) &&
		c.Bg.Equals(other.Bg)
}
