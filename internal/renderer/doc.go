// Package renderer turns the canvas into terminal output.
//
// Each tick the renderer resolves the grid plus the cursor highlight into
// a Frame, compares it with the previous Frame and sends only the changed
// cells to a Sink. The previous Frame is the only state kept between
// ticks; invalidating a region simply poisons the matching cells of that
// Frame so the next diff reports them.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        Renderer (frame history)         │
//	├─────────────────────────────────────────┤
//	│  RenderFrame │ Diff │ dirty.Tracker     │
//	├─────────────────────────────────────────┤
//	│     Sink: MoveCursorTo / WriteText      │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ ANSIWriter │ Null   │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, grid.Width(), grid.Height(), renderer.DefaultHighlight())
//	r.Render(grid, cursor)
package renderer
