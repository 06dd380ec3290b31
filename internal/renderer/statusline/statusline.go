// Package statusline provides the status bar, message line and help block
// drawn below the canvas.
package statusline

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/renderer"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// DefaultMessageTTL is how long a transient message stays visible.
const DefaultMessageTTL = 3 * time.Second

// StatusLine renders the rows below the canvas: a status bar with mode
// and drawing state, a message or prompt row, and an optional help block.
type StatusLine struct {
	// Display state
	mode      string // "MOVE" or "DRAW"
	tool      string // "PEN" or "ERASER"
	x, y      int
	colorName string
	glyph     rune

	// Prompt state
	promptActive bool
	promptLabel  string
	promptBuffer string

	// Message display
	message     string
	messageType MessageType
	expires     time.Time

	help []string

	modeStyles map[string]renderer.Style
	now        func() time.Time
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		mode:       "MOVE",
		tool:       "PEN",
		glyph:      canvas.EmptyGlyph,
		modeStyles: defaultModeStyles(),
		now:        time.Now,
	}
}

// defaultModeStyles returns default styles for each mode.
func defaultModeStyles() map[string]renderer.Style {
	return map[string]renderer.Style{
		"MOVE": renderer.DefaultStyle().Bold().WithBackground(canvas.ColorBlue).WithForeground(canvas.ColorWhite),
		"DRAW": renderer.DefaultStyle().Bold().WithBackground(canvas.ColorGreen).WithForeground(canvas.ColorBlack),
	}
}

// SetClock replaces the time source used for message expiry.
func (s *StatusLine) SetClock(now func() time.Time) {
	s.now = now
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetTool updates the displayed tool.
func (s *StatusLine) SetTool(tool string) {
	s.tool = tool
}

// SetPosition updates the cursor position (0-indexed, as on the grid).
func (s *StatusLine) SetPosition(x, y int) {
	s.x, s.y = x, y
}

// SetColor updates the displayed color name.
func (s *StatusLine) SetColor(name string) {
	s.colorName = name
}

// SetGlyph updates the displayed glyph.
func (s *StatusLine) SetGlyph(glyph rune) {
	s.glyph = glyph
}

// SetHelp sets the help block shown under the message row.
func (s *StatusLine) SetHelp(lines []string) {
	s.help = append([]string(nil), lines...)
}

// SetPrompt shows or hides the input prompt. While active it replaces the
// message row.
func (s *StatusLine) SetPrompt(active bool, label, buffer string) {
	s.promptActive = active
	s.promptLabel = label
	s.promptBuffer = buffer
}

// SetMessage displays a status message for ttl. A ttl of zero keeps the
// message until it is replaced or cleared.
func (s *StatusLine) SetMessage(msg string, msgType MessageType, ttl time.Duration) {
	s.message = msg
	s.messageType = msgType
	s.expires = time.Time{}
	if ttl > 0 {
		s.expires = s.now().Add(ttl)
	}
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
	s.expires = time.Time{}
}

// Message returns the visible message, if any.
func (s *StatusLine) Message() (string, MessageType) {
	s.expire()
	return s.message, s.messageType
}

func (s *StatusLine) expire() {
	if s.message != "" && !s.expires.IsZero() && !s.now().Before(s.expires) {
		s.ClearMessage()
	}
}

// Height returns the number of rows the status area uses.
func (s *StatusLine) Height() int {
	return 2 + len(s.help)
}

// Lines returns the rows of the status area, top to bottom.
func (s *StatusLine) Lines() []renderer.Line {
	s.expire()

	lines := make([]renderer.Line, 0, s.Height())
	lines = append(lines, s.statusBar())

	switch {
	case s.promptActive:
		lines = append(lines, renderer.TextLine(s.promptLabel+": "+s.promptBuffer+"_"))
	case s.message != "":
		lines = append(lines, renderer.Line{Text: s.message, Style: messageStyle(s.messageType)})
	default:
		lines = append(lines, renderer.TextLine(""))
	}

	for _, h := range s.help {
		lines = append(lines, renderer.TextLine(h))
	}
	return lines
}

// Render draws the status area starting at row top and returns the number
// of rows that changed.
func (s *StatusLine) Render(r *renderer.Renderer, top int) int {
	return r.RenderLines(top, s.Lines())
}

// statusBar renders the mode and drawing state line.
func (s *StatusLine) statusBar() renderer.Line {
	style, ok := s.modeStyles[s.mode]
	if !ok {
		style = renderer.DefaultStyle().Bold().WithBackground(canvas.ColorGray)
	}

	parts := []string{
		" " + s.mode + " ",
		s.tool,
		fmt.Sprintf("(%d,%d)", s.x, s.y),
		"color: " + s.colorName,
		fmt.Sprintf("glyph: %q", s.glyph),
	}
	return renderer.Line{Text: strings.Join(parts, " | "), Style: style}
}

func messageStyle(t MessageType) renderer.Style {
	switch t {
	case MessageError:
		return renderer.DefaultStyle().WithForeground(canvas.ColorRed).Bold()
	case MessageWarning:
		return renderer.DefaultStyle().WithForeground(canvas.ColorYellow)
	default:
		return renderer.DefaultStyle()
	}
}
