package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/geometry"
)

// recordSink records every sink call as a string.
type recordSink struct {
	calls  []string
	writes []string
	moves  int
}

func (s *recordSink) MoveCursorTo(x, y int) {
	s.calls = append(s.calls, fmt.Sprintf("move %d,%d", x, y))
	s.moves++
}

func (s *recordSink) WriteText(text string, style Style) {
	s.calls = append(s.calls, fmt.Sprintf("write %q", text))
	s.writes = append(s.writes, text)
}

func (s *recordSink) reset() {
	s.calls = nil
	s.writes = nil
	s.moves = 0
}

func newTestGrid(t *testing.T, w, h int) *canvas.Grid {
	t.Helper()
	g, err := canvas.New(w, h)
	if err != nil {
		t.Fatalf("canvas.New(%d, %d) error: %v", w, h, err)
	}
	return g
}

func TestRenderFirstFrameBatches(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	sink := &recordSink{}
	r := New(sink, 3, 2, DefaultHighlight())

	n := r.Render(g, geometry.Pt(0, 0))
	if n != 6 {
		t.Fatalf("Render() = %d cells, want 6", n)
	}

	want := []string{
		`move 0,0`,
		`write "+"`,
		`write "  "`,
		`move 0,1`,
		`write "   "`,
	}
	if strings.Join(sink.calls, "|") != strings.Join(want, "|") {
		t.Errorf("calls = %v, want %v", sink.calls, want)
	}
}

func TestRenderUnchangedEmitsNothing(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	sink := &recordSink{}
	r := New(sink, 4, 4, DefaultHighlight())

	r.Render(g, geometry.Pt(1, 1))
	sink.reset()

	if n := r.Render(g, geometry.Pt(1, 1)); n != 0 {
		t.Errorf("second Render() = %d, want 0", n)
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestRenderCursorMove(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	sink := &recordSink{}
	r := New(sink, 4, 4, DefaultHighlight())

	r.Render(g, geometry.Pt(1, 1))
	sink.reset()

	if n := r.Render(g, geometry.Pt(2, 1)); n != 2 {
		t.Fatalf("Render() after cursor move = %d, want 2", n)
	}
	// Old cursor cell reverts to a space, new one shows the highlight.
	// They are adjacent but styled differently.
	if sink.moves != 1 {
		t.Errorf("moves = %d, want 1", sink.moves)
	}
	if strings.Join(sink.writes, "") != " +" {
		t.Errorf("writes = %q, want %q", sink.writes, []string{" ", "+"})
	}
}

func TestRenderCursorOverPaintedCell(t *testing.T) {
	g := newTestGrid(t, 2, 1)
	g.Set(0, 0, '#', canvas.ColorRed, canvas.ColorBlack)

	f := RenderFrame(g, geometry.Pt(0, 0), DefaultHighlight())
	got := f.At(0, 0)
	want := canvas.NewCell('#', canvas.ColorBlack, canvas.ColorWhite)
	if !got.Equals(want) {
		t.Errorf("highlighted cell = %+v, want %+v", got, want)
	}
	if g.Get(0, 0).Fg != canvas.ColorRed {
		t.Error("RenderFrame must not modify the grid")
	}
}

func TestRenderCursorOutOfBounds(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	f := RenderFrame(g, geometry.Pt(5, 5), DefaultHighlight())
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !f.At(x, y).Equals(canvas.EmptyCell()) {
				t.Errorf("At(%d,%d) = %+v, want empty", x, y, f.At(x, y))
			}
		}
	}
}

func TestRenderGridChange(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	sink := &recordSink{}
	r := New(sink, 5, 5, DefaultHighlight())
	r.Render(g, geometry.Pt(0, 0))
	sink.reset()

	g.Set(3, 3, '*', canvas.ColorGreen, canvas.ColorBlack)
	if n := r.Render(g, geometry.Pt(0, 0)); n != 1 {
		t.Fatalf("Render() = %d, want 1", n)
	}
	want := []string{`move 3,3`, `write "*"`}
	if strings.Join(sink.calls, "|") != strings.Join(want, "|") {
		t.Errorf("calls = %v, want %v", sink.calls, want)
	}
}

func TestInvalidateRegion(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	sink := &recordSink{}
	r := New(sink, 10, 10, DefaultHighlight())
	r.Render(g, geometry.Pt(0, 0))
	sink.reset()

	r.InvalidateRegion(geometry.Rect{Min: geometry.Pt(2, 2), Max: geometry.Pt(4, 3)})
	if n := r.Render(g, geometry.Pt(0, 0)); n != 2 {
		t.Errorf("Render() after InvalidateRegion = %d, want 2", n)
	}

	sink.reset()
	if n := r.Render(g, geometry.Pt(0, 0)); n != 0 {
		t.Errorf("invalidation should be consumed, got %d cells", n)
	}
}

func TestInvalidateAll(t *testing.T) {
	g := newTestGrid(t, 4, 3)
	sink := &recordSink{}
	r := New(sink, 4, 3, DefaultHighlight())
	r.Render(g, geometry.Pt(0, 0))

	r.InvalidateAll()
	if n := r.Render(g, geometry.Pt(0, 0)); n != 12 {
		t.Errorf("Render() after InvalidateAll = %d, want 12", n)
	}
}

func TestRenderLinesUsesLineWidth(t *testing.T) {
	sink := &recordSink{}
	r := New(sink, 8, 3, DefaultHighlight())
	msg := "Saved to ./painting_1700000000.txt"

	r.RenderLines(4, []Line{TextLine(msg)})
	if sink.writes[0] != "Saved to" {
		t.Fatalf("canvas-wide line = %q, want %q", sink.writes[0], "Saved to")
	}

	r.SetLineWidth(80)
	if r.LineWidth() != 80 {
		t.Fatalf("LineWidth() = %d, want 80", r.LineWidth())
	}
	sink.reset()
	if n := r.RenderLines(4, []Line{TextLine(msg)}); n != 1 {
		t.Fatalf("RenderLines() after SetLineWidth = %d, want 1", n)
	}
	if !strings.HasPrefix(sink.writes[0], msg) || len(sink.writes[0]) != 80 {
		t.Errorf("line = %q, want message padded to 80", sink.writes[0])
	}

	r.SetLineWidth(4)
	if r.LineWidth() != 8 {
		t.Errorf("LineWidth() below canvas = %d, want 8", r.LineWidth())
	}
}

func TestRenderLines(t *testing.T) {
	sink := &recordSink{}
	r := New(sink, 6, 2, DefaultHighlight())

	if n := r.RenderLines(2, []Line{TextLine("MOVE"), TextLine("help")}); n != 2 {
		t.Fatalf("RenderLines() = %d, want 2", n)
	}
	if sink.writes[0] != "MOVE  " {
		t.Errorf("first line = %q, want padded %q", sink.writes[0], "MOVE  ")
	}

	sink.reset()
	if n := r.RenderLines(2, []Line{TextLine("MOVE"), TextLine("help")}); n != 0 {
		t.Errorf("unchanged RenderLines() = %d, want 0", n)
	}

	sink.reset()
	if n := r.RenderLines(2, []Line{TextLine("DRAW extra long")}); n != 2 {
		t.Errorf("RenderLines() = %d, want 2 (one changed, one blanked)", n)
	}
	if sink.writes[0] != "DRAW e" {
		t.Errorf("truncated line = %q, want %q", sink.writes[0], "DRAW e")
	}
	if sink.writes[1] != "      " {
		t.Errorf("blanked line = %q, want spaces", sink.writes[1])
	}

	sink.reset()
	bold := Line{Text: "DRAW extra long", Style: DefaultStyle().Bold()}
	if n := r.RenderLines(2, []Line{bold}); n != 1 {
		t.Errorf("style-only change RenderLines() = %d, want 1", n)
	}
}

func TestStats(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	sink := &recordSink{}
	r := New(sink, 2, 2, DefaultHighlight())
	r.Render(g, geometry.Pt(0, 0))
	r.Render(g, geometry.Pt(0, 0))

	s := r.Stats()
	if s.Frames != 2 {
		t.Errorf("Frames = %d, want 2", s.Frames)
	}
	if s.CellsWritten != 4 {
		t.Errorf("CellsWritten = %d, want 4", s.CellsWritten)
	}
	if s.Moves != uint64(sink.moves) {
		t.Errorf("Moves = %d, sink saw %d", s.Moves, sink.moves)
	}
}
