package input

import (
	"fmt"
	"strings"
)

// Kind identifies a command.
type Kind uint8

const (
	// KindNone is the zero value; it is never emitted by a Source.
	KindNone Kind = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	TogglePixel
	ToggleMode
	CycleColor
	CycleGlyph
	LineToLast
	FloodFill
	Save
	LoadImage
	Quit
	ToggleTool
	PaintAt
	ClearCanvas
)

var kindNames = [...]string{
	KindNone:    "none",
	MoveUp:      "move_up",
	MoveDown:    "move_down",
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	TogglePixel: "toggle_pixel",
	ToggleMode:  "toggle_mode",
	CycleColor:  "cycle_color",
	CycleGlyph:  "cycle_glyph",
	LineToLast:  "line_to_last",
	FloodFill:   "flood_fill",
	Save:        "save",
	LoadImage:   "load_image",
	Quit:        "quit",
	ToggleTool:  "toggle_tool",
	PaintAt:     "paint_at",
	ClearCanvas: "clear_canvas",
}

// String returns the snake_case name used in config files.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindFromName returns the Kind for a config name such as "flood_fill".
// Dashes are accepted in place of underscores.
func KindFromName(name string) (Kind, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range kindNames {
		if n == name && Kind(k) != KindNone {
			return Kind(k), true
		}
	}
	return KindNone, false
}

// Command is one decoded user request.
type Command struct {
	Kind Kind

	// Path is the image path for LoadImage.
	Path string

	// X and Y are canvas coordinates for PaintAt.
	X, Y int
}

// Cmd returns a command with no arguments.
func Cmd(kind Kind) Command {
	return Command{Kind: kind}
}

// LoadImageCmd returns a LoadImage command for path.
func LoadImageCmd(path string) Command {
	return Command{Kind: LoadImage, Path: path}
}

// PaintAtCmd returns a PaintAt command for canvas position (x, y).
func PaintAtCmd(x, y int) Command {
	return Command{Kind: PaintAt, X: x, Y: y}
}

// String returns a compact form for logging.
func (c Command) String() string {
	switch c.Kind {
	case LoadImage:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Path)
	case PaintAt:
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.X, c.Y)
	default:
		return c.Kind.String()
	}
}
