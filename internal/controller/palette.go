package controller

import (
	"errors"
	"fmt"

	"github.com/dshills/glyphpaint/internal/canvas"
)

// ErrEmptyPalette is returned when building a palette with no entries.
var ErrEmptyPalette = errors.New("palette is empty")

// Palette is an immutable, non-empty list of choices.
type Palette[T any] struct {
	items []T
}

// NewPalette creates a palette holding a copy of items.
func NewPalette[T any](items ...T) (Palette[T], error) {
	if len(items) == 0 {
		return Palette[T]{}, ErrEmptyPalette
	}
	return Palette[T]{items: append([]T(nil), items...)}, nil
}

// Len returns the number of entries.
func (p Palette[T]) Len() int {
	return len(p.items)
}

// At returns entry i, wrapping modulo the palette size.
func (p Palette[T]) At(i int) T {
	n := len(p.items)
	return p.items[((i%n)+n)%n]
}

// Next returns the index after i, wrapping to zero.
func (p Palette[T]) Next(i int) int {
	return (i + 1) % len(p.items)
}

// NamedColor is a palette color with its display name.
type NamedColor struct {
	Name  string
	Color canvas.Color
}

// DefaultColors is the color palette: white, red, green, blue, yellow,
// magenta, cyan, black.
func DefaultColors() Palette[NamedColor] {
	p, _ := NewPalette(
		NamedColor{"white", canvas.ColorWhite},
		NamedColor{"red", canvas.ColorRed},
		NamedColor{"green", canvas.ColorGreen},
		NamedColor{"blue", canvas.ColorBlue},
		NamedColor{"yellow", canvas.ColorYellow},
		NamedColor{"magenta", canvas.ColorMagenta},
		NamedColor{"cyan", canvas.ColorCyan},
		NamedColor{"black", canvas.ColorBlack},
	)
	return p
}

// DefaultGlyphs is the glyph palette, densest first and ending with the
// empty glyph.
func DefaultGlyphs() Palette[rune] {
	p, _ := NewPalette([]rune("█▓▒░●○*#@+-|. ")...)
	return p
}

// ColorPalette builds a color palette from names or hex strings.
func ColorPalette(specs []string) (Palette[NamedColor], error) {
	colors := make([]NamedColor, 0, len(specs))
	for _, s := range specs {
		c, err := canvas.ParseColor(s)
		if err != nil {
			return Palette[NamedColor]{}, fmt.Errorf("palette color %q: %w", s, err)
		}
		colors = append(colors, NamedColor{Name: s, Color: c})
	}
	return NewPalette(colors...)
}
