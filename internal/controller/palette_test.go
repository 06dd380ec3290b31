package controller

import (
	"errors"
	"testing"

	"github.com/dshills/glyphpaint/internal/canvas"
)

func TestPalette(t *testing.T) {
	if _, err := NewPalette[int](); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("NewPalette() error = %v, want ErrEmptyPalette", err)
	}

	items := []int{1, 2, 3}
	p, err := NewPalette(items...)
	if err != nil {
		t.Fatal(err)
	}
	items[0] = 99
	if p.At(0) != 1 {
		t.Error("palette must not alias its input")
	}
	if p.At(4) != 2 || p.At(-1) != 3 {
		t.Errorf("At wraps incorrectly: At(4)=%d At(-1)=%d", p.At(4), p.At(-1))
	}
	if p.Next(2) != 0 {
		t.Errorf("Next(2) = %d, want 0", p.Next(2))
	}
}

func TestDefaultPalettes(t *testing.T) {
	if n := DefaultColors().Len(); n != 8 {
		t.Errorf("DefaultColors().Len() = %d, want 8", n)
	}
	g := DefaultGlyphs()
	if g.Len() != 14 || g.At(0) != '█' || g.At(13) != canvas.EmptyGlyph {
		t.Errorf("DefaultGlyphs() = %d entries, first %q, last %q", g.Len(), g.At(0), g.At(13))
	}
}

func TestColorPalette(t *testing.T) {
	p, err := ColorPalette([]string{"red", "#00ff00", "color208"})
	if err != nil {
		t.Fatalf("ColorPalette() error: %v", err)
	}
	if p.At(1).Color != canvas.ColorGreen || p.At(1).Name != "#00ff00" {
		t.Errorf("At(1) = %+v", p.At(1))
	}
	if !p.At(2).Color.Equals(canvas.ColorFromIndex(208)) {
		t.Errorf("At(2) = %+v, want palette index 208", p.At(2))
	}

	if _, err := ColorPalette([]string{"chartreuse-ish"}); err == nil {
		t.Error("expected error for unknown color")
	}
	if _, err := ColorPalette(nil); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("ColorPalette(nil) error = %v", err)
	}
}
