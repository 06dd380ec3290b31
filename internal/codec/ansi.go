package codec

import (
	"bytes"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/geometry"
	"github.com/dshills/glyphpaint/internal/renderer"
	"github.com/dshills/glyphpaint/internal/renderer/backend"
)

// noCursor lies outside every grid so no cell is highlighted.
var noCursor = geometry.Pt(-1, -1)

// EncodeANSI exports the grid with colors as an ANSI escape stream that
// reproduces the painting when printed to a terminal.
func EncodeANSI(g *canvas.Grid) ([]byte, error) {
	var buf bytes.Buffer
	w := backend.NewANSIStream(&buf)

	r := renderer.New(w, g.Width(), g.Height(), renderer.DefaultHighlight())
	r.Render(g, noCursor)

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
