// Package codec converts the canvas to and from files.
//
// Text is the lossy interchange format: one line per row with trailing
// empty cells trimmed, colors dropped. ANSI export keeps colors by
// replaying the grid through the renderer into an ANSI escape stream.
// Images are decoded, scaled to the grid with bilinear filtering and
// mapped to a ten-step glyph ramp by luminance.
package codec
