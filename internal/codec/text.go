package codec

import (
	"bytes"
	"strings"

	"github.com/dshills/glyphpaint/internal/canvas"
)

// EncodeText serializes the grid's glyphs: one "\n"-terminated line per
// row with trailing empty cells trimmed. Colors are not preserved.
func EncodeText(g *canvas.Grid) []byte {
	var buf bytes.Buffer
	for _, row := range g.Glyphs() {
		buf.WriteString(strings.TrimRight(string(row), string(canvas.EmptyGlyph)))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// DecodeText parses text produced by EncodeText into rows of glyphs.
// Both "\n" and "\r\n" line endings are accepted.
func DecodeText(data []byte) [][]rune {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return rows
}

// LoadText replaces the grid contents with decoded text. Glyphs outside
// the grid are dropped and cells with no glyph are left empty; every
// glyph is drawn with the default colors. It returns the number of
// non-empty cells written.
func LoadText(g *canvas.Grid, data []byte) int {
	g.Clear()
	n := 0
	for y, row := range DecodeText(data) {
		for x, r := range row {
			if !g.InBounds(x, y) || r == canvas.EmptyGlyph {
				continue
			}
			g.Set(x, y, r, canvas.DefaultForeground, canvas.DefaultBackground)
			n++
		}
	}
	return n
}
