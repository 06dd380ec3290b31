package canvas

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := New(80, 24)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	w, h := g.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.Get(x, y).Equals(EmptyCell()) {
				t.Fatalf("cell (%d, %d) not empty after New", x, y)
			}
		}
	}
}

func TestNewGridInvalidDimension(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("expected ErrInvalidDimension, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestGridSetGet(t *testing.T) {
	g, _ := New(10, 5)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, '#', ColorRed, ColorBlue)
			got := g.Get(x, y)
			want := NewCell('#', ColorRed, ColorBlue)
			if !got.Equals(want) {
				t.Fatalf("Get(%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, _ := New(4, 3)
	before := g.Clone()

	points := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}, {-7, -7}}
	for _, p := range points {
		g.Set(p[0], p[1], 'X', ColorRed, ColorRed) // Should not panic
		if !g.Get(p[0], p[1]).Equals(EmptyCell()) {
			t.Errorf("out of bounds Get(%d, %d) should return empty cell", p[0], p[1])
		}
	}

	if !g.Equal(before) {
		t.Error("out of bounds Set should not modify the grid")
	}
}

func TestGridClear(t *testing.T) {
	g, _ := New(5, 5)
	g.Set(1, 1, '@', ColorGreen, ColorYellow)
	g.Set(4, 4, '*', ColorCyan, ColorBlack)

	g.Clear()

	fresh, _ := New(5, 5)
	if !g.Equal(fresh) {
		t.Error("Clear should reset all cells")
	}
}

func TestGridToggle(t *testing.T) {
	g, _ := New(3, 3)

	g.Toggle(1, 1, '#', ColorRed, ColorBlue)
	if got := g.Get(1, 1); !got.Equals(NewCell('#', ColorRed, ColorBlue)) {
		t.Errorf("toggle on empty should paint, got %+v", got)
	}

	// Clearing ignores the supplied colors.
	g.Toggle(1, 1, '#', ColorGreen, ColorYellow)
	if got := g.Get(1, 1); !got.Equals(EmptyCell()) {
		t.Errorf("toggle on painted should reset to empty, got %+v", got)
	}

	g.Toggle(9, 9, '#', ColorRed, ColorBlue) // Should not panic
}

func TestGridRowAndGlyphs(t *testing.T) {
	g, _ := New(3, 2)
	g.Set(0, 1, 'a', ColorWhite, ColorBlack)
	g.Set(2, 1, 'b', ColorWhite, ColorBlack)

	row := g.Row(1)
	if len(row) != 3 || row[0].Glyph != 'a' || row[2].Glyph != 'b' {
		t.Errorf("unexpected row: %+v", row)
	}
	row[1].Glyph = 'z'
	if g.Get(1, 1).Glyph == 'z' {
		t.Error("Row should return a copy")
	}
	if g.Row(5) != nil {
		t.Error("out of range Row should be nil")
	}

	glyphs := g.Glyphs()
	if string(glyphs[1]) != "a b" {
		t.Errorf("expected %q, got %q", "a b", string(glyphs[1]))
	}
}
