package renderer

// Sink receives draw instructions. The renderer only ever calls these
// two methods, so a terminal, an ANSI byte stream or a test recorder can
// stand behind it.
type Sink interface {
	// MoveCursorTo positions the write cursor at column x, row y.
	MoveCursorTo(x, y int)

	// WriteText writes single-column glyphs at the write cursor and
	// advances it by one column per rune.
	WriteText(text string, style Style)
}
