package renderer

import (
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/glyphpaint/internal/geometry"
	"github.com/dshills/glyphpaint/internal/renderer/dirty"
)

// Stats holds cumulative renderer counters.
type Stats struct {
	Frames       uint64
	CellsWritten uint64
	Moves        uint64
	Writes       uint64
}

// Renderer draws successive frames to a Sink, emitting only what changed.
// It is not safe for concurrent use; the application loop owns it.
type Renderer struct {
	sink  Sink
	rule  HighlightRule
	prev  *Frame
	dirty *dirty.Tracker

	width int

	// lineWidth is the width of rows drawn by RenderLines. It is never
	// narrower than the canvas.
	lineWidth int

	// lines caches the text last written to rows outside the canvas.
	lines map[int]Line

	stats Stats
}

// New creates a renderer for a canvas of the given size.
// Nothing has been drawn yet, so the first Render emits every cell.
func New(sink Sink, width, height int, rule HighlightRule) *Renderer {
	return &Renderer{
		sink:      sink,
		rule:      rule,
		dirty:     dirty.NewTracker(width, height),
		width:     width,
		lineWidth: width,
		lines:     make(map[int]Line),
	}
}

// Render draws the grid with the cursor overlay and returns the number of
// cells written.
func (r *Renderer) Render(g Grid, cursor geometry.Point) int {
	curr := RenderFrame(g, cursor, r.rule)

	if r.prev != nil && r.dirty.IsDirty() {
		if r.dirty.NeedsFullRedraw() {
			r.prev = nil
		} else {
			for _, region := range r.dirty.Regions() {
				r.prev.invalidate(region)
			}
		}
	}
	r.dirty.Clear()

	n := r.flush(Diff(r.prev, curr))
	r.prev = curr
	r.stats.Frames++
	return n
}

// flush writes changes to the sink. Consecutive cells on a row that share
// a style are joined into one WriteText; the cursor is only moved when the
// next change is not where the previous write left it.
func (r *Renderer) flush(changes iter.Seq[Change]) int {
	var (
		buf   strings.Builder
		style Style
		penX  = -1
		penY  = -1
		count int
	)

	emit := func() {
		if buf.Len() == 0 {
			return
		}
		r.sink.WriteText(buf.String(), style)
		r.stats.Writes++
		buf.Reset()
	}

	for ch := range changes {
		s := CellStyle(ch.Cell)
		if ch.X != penX || ch.Y != penY {
			emit()
			r.sink.MoveCursorTo(ch.X, ch.Y)
			r.stats.Moves++
		} else if !s.Equals(style) {
			emit()
		}
		style = s
		buf.WriteRune(ch.Cell.Glyph)
		penX, penY = ch.X+1, ch.Y
		count++
	}
	emit()

	r.stats.CellsWritten += uint64(count)
	return count
}

// InvalidateRegion forces the cells of rect to be redrawn on the next
// Render even if they did not change.
func (r *Renderer) InvalidateRegion(rect geometry.Rect) {
	r.dirty.MarkRegion(rect)
}

// InvalidateAll forces a full redraw on the next Render, including any
// status lines.
func (r *Renderer) InvalidateAll() {
	r.dirty.MarkFullRedraw()
	clear(r.lines)
}

// SetLineWidth sets the width of rows drawn by RenderLines, usually the
// terminal width. Widths below the canvas width use the canvas width.
// A change forces every line to be redrawn.
func (r *Renderer) SetLineWidth(width int) {
	width = max(width, r.width)
	if width == r.lineWidth {
		return
	}
	r.lineWidth = width
	clear(r.lines)
}

// LineWidth returns the width of rows drawn by RenderLines.
func (r *Renderer) LineWidth() int {
	return r.lineWidth
}

// Line is a row of text drawn outside the canvas, such as the status bar.
type Line struct {
	Text  string
	Style Style
}

// TextLine returns a line in the default style.
func TextLine(text string) Line {
	return Line{Text: text, Style: DefaultStyle()}
}

// RenderLines draws text rows starting at row top, padded or truncated to
// the line width. Rows that are unchanged since the last call are
// skipped and rows below the new block that were drawn before are
// blanked. It returns the number of rows written.
func (r *Renderer) RenderLines(top int, lines []Line) int {
	written := 0
	for i, line := range lines {
		row := top + i
		line.Text = runewidth.FillRight(runewidth.Truncate(line.Text, r.lineWidth, ""), r.lineWidth)
		if cached, ok := r.lines[row]; ok && cached == line {
			continue
		}
		r.writeLine(row, line)
		written++
	}

	blank := TextLine(strings.Repeat(" ", max(0, r.lineWidth)))
	for row, cached := range r.lines {
		if row < top+len(lines) || cached == blank {
			continue
		}
		r.writeLine(row, blank)
		written++
	}
	return written
}

func (r *Renderer) writeLine(row int, line Line) {
	r.sink.MoveCursorTo(0, row)
	r.sink.WriteText(line.Text, line.Style)
	r.stats.Moves++
	r.stats.Writes++
	r.lines[row] = line
}

// Stats returns cumulative counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}
