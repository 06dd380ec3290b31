package backend

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/renderer"
)

// ANSIWriter is a renderer.Sink that encodes draw calls as ANSI escape
// sequences on an io.Writer.
//
// In absolute mode every MoveCursorTo becomes a cursor position sequence.
// In stream mode moves to later rows become newlines and forward moves on
// the same row become spaces, so the output can be printed with cat.
type ANSIWriter struct {
	w      *bufio.Writer
	stream bool

	row, col int
	style    renderer.Style
	styled   bool
	err      error
}

// NewANSIWriter creates a writer that positions with escape sequences.
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{w: bufio.NewWriter(w)}
}

// NewANSIStream creates a writer for sequential, row-major output.
func NewANSIStream(w io.Writer) *ANSIWriter {
	return &ANSIWriter{w: bufio.NewWriter(w), stream: true}
}

func (a *ANSIWriter) MoveCursorTo(x, y int) {
	if !a.stream || y < a.row || (y == a.row && x < a.col) {
		a.printf("\x1b[%d;%dH", y+1, x+1)
		a.row, a.col = y, x
		return
	}
	if y > a.row {
		a.reset()
		a.write(strings.Repeat("\n", y-a.row))
		a.row, a.col = y, 0
	}
	if x > a.col {
		a.reset()
		a.write(strings.Repeat(" ", x-a.col))
		a.col = x
	}
}

func (a *ANSIWriter) WriteText(text string, style renderer.Style) {
	if !a.styled || !a.style.Equals(style) {
		a.write(sgr(style))
		a.style = style
		a.styled = true
	}
	a.write(text)
	a.col += len([]rune(text))
}

// Close resets the terminal style and flushes buffered output. It returns
// the first error seen by any write.
func (a *ANSIWriter) Close() error {
	if a.styled {
		a.write("\x1b[0m")
	}
	if a.stream {
		a.write("\n")
	}
	if a.err == nil {
		a.err = a.w.Flush()
	}
	return a.err
}

func (a *ANSIWriter) reset() {
	if a.styled {
		a.write("\x1b[0m")
		a.styled = false
	}
}

func (a *ANSIWriter) write(s string) {
	if a.err != nil {
		return
	}
	_, a.err = a.w.WriteString(s)
}

func (a *ANSIWriter) printf(format string, args ...any) {
	a.write(fmt.Sprintf(format, args...))
}

// sgr returns the select-graphic-rendition sequence for style.
func sgr(s renderer.Style) string {
	params := []string{"0"}
	if s.Attributes.Has(renderer.AttrBold) {
		params = append(params, "1")
	}
	if s.Attributes.Has(renderer.AttrDim) {
		params = append(params, "2")
	}
	if s.Attributes.Has(renderer.AttrUnderline) {
		params = append(params, "4")
	}
	if s.Attributes.Has(renderer.AttrReverse) {
		params = append(params, "7")
	}
	params = append(params, colorParam(s.Foreground, 38), colorParam(s.Background, 48))
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// colorParam encodes c for the foreground (base 38) or background (48).
func colorParam(c canvas.Color, base int) string {
	switch {
	case c.IsDefault():
		return fmt.Sprintf("%d", base+1)
	case c.Indexed:
		return fmt.Sprintf("%d;5;%d", base, c.R)
	default:
		return fmt.Sprintf("%d;2;%d;%d;%d", base, c.R, c.G, c.B)
	}
}
