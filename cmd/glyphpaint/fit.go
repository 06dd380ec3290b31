package main

import (
	"golang.org/x/term"

	"github.com/dshills/glyphpaint/internal/app"
	"github.com/dshills/glyphpaint/internal/config"
	"github.com/dshills/glyphpaint/internal/input"
)

// fitToTerminal replaces a zero width or height with the largest canvas
// that fits the terminal on fd below which the status area still fits.
func fitToTerminal(s *config.Settings, fd int) {
	if s.Width > 0 && s.Height > 0 {
		return
	}

	termW, termH := config.DefaultWidth, config.DefaultHeight
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			termW, termH = w, h
		}
	}

	km := s.Keymap
	if km == nil {
		km = input.DefaultKeymap()
	}
	s.Width, s.Height = fitCanvas(s.Width, s.Height, termW, termH, len(km.Help(app.HelpPerLine)))
}

// fitCanvas sizes the zero dimensions of a canvas. Below the canvas sit a
// spacer row, the status bar, the message row and helpRows of help.
func fitCanvas(width, height, termW, termH, helpRows int) (int, int) {
	if width <= 0 {
		width = termW
	}
	if height <= 0 {
		height = termH - 3 - helpRows
	}
	width = min(max(width, 1), config.MaxDimension)
	height = min(max(height, 1), config.MaxDimension)
	return width, height
}
