package renderer

import "github.com/dshills/glyphpaint/internal/canvas"

// Attribute represents text attributes (bold, reverse, ...).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is the visual style of a run of text.
type Style struct {
	Foreground canvas.Color
	Background canvas.Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{
		Foreground: canvas.ColorDefault,
		Background: canvas.ColorDefault,
	}
}

// CellStyle returns the style a canvas cell is drawn with.
func CellStyle(c canvas.Cell) Style {
	return Style{Foreground: c.Fg, Background: c.Bg}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg canvas.Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg canvas.Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}
