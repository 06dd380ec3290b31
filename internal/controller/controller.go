package controller

import (
	"fmt"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/codec"
	"github.com/dshills/glyphpaint/internal/geometry"
	"github.com/dshills/glyphpaint/internal/input"
)

// Mode selects whether cursor movement paints.
type Mode int

const (
	ModeMove Mode = iota
	ModeDraw
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeDraw {
		return "DRAW"
	}
	return "MOVE"
}

// Tool selects what painting commands write.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

// String returns the display name of the tool.
func (t Tool) String() string {
	if t == ToolEraser {
		return "ERASER"
	}
	return "PEN"
}

// Invalidator is told which screen cells a command changed.
type Invalidator interface {
	InvalidateRegion(r geometry.Rect)
	InvalidateAll()
}

// Persistence saves the grid and imports images.
type Persistence interface {
	Save(g *canvas.Grid) (path string, err error)
	ImportImage(path string, width, height int) ([]codec.Fill, error)
}

// Level classifies a result message.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Result reports the outcome of one command.
type Result struct {
	// Quit is set when the session should end.
	Quit bool

	// Message is a status text for the user, empty if none.
	Message string
	Level   Level

	// Err is the failure behind an error message.
	Err error

	// Dirty is the grid region the command wrote.
	Dirty geometry.Rect
}

// Options configures a Controller.
type Options struct {
	Colors      Palette[NamedColor]
	Glyphs      Palette[rune]
	Background  canvas.Color
	Invalidator Invalidator
	Persistence Persistence
}

// Controller applies commands to a grid. It is driven from a single loop
// and is not safe for concurrent use.
type Controller struct {
	grid   *canvas.Grid
	cursor geometry.Point
	mode   Mode
	tool   Tool

	colors   Palette[NamedColor]
	colorIdx int
	glyphs   Palette[rune]
	glyphIdx int
	bg       canvas.Color

	last    geometry.Point
	hasLast bool

	inv   Invalidator
	store Persistence
}

// New creates a controller for grid with the cursor at the origin.
// Empty palettes fall back to the defaults; the zero Background is black.
func New(grid *canvas.Grid, opts Options) *Controller {
	if opts.Colors.Len() == 0 {
		opts.Colors = DefaultColors()
	}
	if opts.Glyphs.Len() == 0 {
		opts.Glyphs = DefaultGlyphs()
	}
	if opts.Invalidator == nil {
		opts.Invalidator = nopInvalidator{}
	}
	return &Controller{
		grid:   grid,
		colors: opts.Colors,
		glyphs: opts.Glyphs,
		bg:     opts.Background,
		inv:    opts.Invalidator,
		store:  opts.Persistence,
	}
}

type nopInvalidator struct{}

func (nopInvalidator) InvalidateRegion(geometry.Rect) {}
func (nopInvalidator) InvalidateAll()                 {}

// Cursor returns the cursor position.
func (c *Controller) Cursor() geometry.Point { return c.cursor }

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Tool returns the current tool.
func (c *Controller) Tool() Tool { return c.tool }

// Color returns the selected foreground color.
func (c *Controller) Color() NamedColor { return c.colors.At(c.colorIdx) }

// Glyph returns the selected glyph.
func (c *Controller) Glyph() rune { return c.glyphs.At(c.glyphIdx) }

// Background returns the background used for painted cells.
func (c *Controller) Background() canvas.Color { return c.bg }

// LastPoint returns the last toggled point, if any.
func (c *Controller) LastPoint() (geometry.Point, bool) { return c.last, c.hasLast }

// SetPalettes swaps in new palettes. Selections keep their index, wrapped
// to the new sizes.
func (c *Controller) SetPalettes(colors Palette[NamedColor], glyphs Palette[rune]) {
	if colors.Len() > 0 {
		c.colors = colors
		c.colorIdx %= colors.Len()
	}
	if glyphs.Len() > 0 {
		c.glyphs = glyphs
		c.glyphIdx %= glyphs.Len()
	}
}

// Apply executes one command.
func (c *Controller) Apply(cmd input.Command) Result {
	switch cmd.Kind {
	case input.MoveUp:
		return c.move(0, -1)
	case input.MoveDown:
		return c.move(0, 1)
	case input.MoveLeft:
		return c.move(-1, 0)
	case input.MoveRight:
		return c.move(1, 0)
	case input.TogglePixel:
		return c.togglePixel()
	case input.ToggleMode:
		if c.mode == ModeMove {
			c.mode = ModeDraw
		} else {
			c.mode = ModeMove
		}
	case input.CycleColor:
		c.colorIdx = c.colors.Next(c.colorIdx)
	case input.CycleGlyph:
		c.glyphIdx = c.glyphs.Next(c.glyphIdx)
	case input.LineToLast:
		return c.lineToLast()
	case input.FloodFill:
		return c.floodFill()
	case input.Save:
		return c.save()
	case input.LoadImage:
		return c.loadImage(cmd.Path)
	case input.Quit:
		return Result{Quit: true}
	case input.ToggleTool:
		if c.tool == ToolPen {
			c.tool = ToolEraser
		} else {
			c.tool = ToolPen
		}
	case input.PaintAt:
		return c.paintAt(cmd.X, cmd.Y)
	case input.ClearCanvas:
		c.grid.Clear()
		c.inv.InvalidateAll()
		w, h := c.grid.Size()
		return Result{Dirty: geometry.Rect{Max: geometry.Pt(w, h)}}
	}
	return Result{}
}

func (c *Controller) move(dx, dy int) Result {
	w, h := c.grid.Size()
	next := c.cursor.Add(dx, dy).Clamp(w, h)

	var res Result
	if c.mode == ModeDraw {
		res.Dirty = c.strokeLine(c.cursor, next)
	}
	c.cursor = next
	return res
}

// strokeLine draws a pen-down line with the active tool.
func (c *Controller) strokeLine(from, to geometry.Point) geometry.Rect {
	var r geometry.Rect
	if c.tool == ToolEraser {
		r = geometry.DrawLine(c.grid, from, to, canvas.EmptyGlyph, canvas.DefaultForeground)
	} else {
		r = geometry.DrawLine(c.grid, from, to, c.Glyph(), c.Color().Color)
	}
	c.inv.InvalidateRegion(r)
	return r
}

func (c *Controller) togglePixel() Result {
	p := c.cursor
	if c.tool == ToolEraser {
		c.grid.SetCell(p.X, p.Y, canvas.EmptyCell())
	} else {
		c.grid.Toggle(p.X, p.Y, c.Glyph(), c.Color().Color, c.bg)
	}
	c.last, c.hasLast = p, true

	r := geometry.RectFromPoints(p, p)
	c.inv.InvalidateRegion(r)
	return Result{Dirty: r}
}

func (c *Controller) lineToLast() Result {
	if !c.hasLast {
		return Result{}
	}
	r := geometry.DrawLine(c.grid, c.cursor, c.last, c.Glyph(), c.Color().Color)
	c.inv.InvalidateRegion(r)
	return Result{Dirty: r}
}

func (c *Controller) floodFill() Result {
	_, r := geometry.FloodFill(c.grid, c.cursor.X, c.cursor.Y, c.Glyph(), c.Color().Color)
	if !r.Empty() {
		c.inv.InvalidateRegion(r)
	}
	return Result{Dirty: r}
}

func (c *Controller) paintAt(x, y int) Result {
	w, h := c.grid.Size()
	c.cursor = geometry.Pt(x, y).Clamp(w, h)

	p := c.cursor
	if c.tool == ToolEraser {
		c.grid.SetCell(p.X, p.Y, canvas.EmptyCell())
	} else {
		c.grid.Set(p.X, p.Y, c.Glyph(), c.Color().Color, c.bg)
	}
	r := geometry.RectFromPoints(p, p)
	c.inv.InvalidateRegion(r)
	return Result{Dirty: r}
}

func (c *Controller) save() Result {
	if c.store == nil {
		return Result{Message: "Saving is not available", Level: LevelError}
	}
	path, err := c.store.Save(c.grid)
	if err != nil {
		return Result{Message: "Error saving: " + err.Error(), Level: LevelError, Err: err}
	}
	return Result{Message: "Saved to " + path}
}

func (c *Controller) loadImage(path string) Result {
	if c.store == nil {
		return Result{Message: "Loading is not available", Level: LevelError}
	}
	w, h := c.grid.Size()
	fills, err := c.store.ImportImage(path, w, h)
	if err != nil {
		return Result{Message: "Error loading image: " + err.Error(), Level: LevelError, Err: err}
	}

	fg := c.Color().Color
	var r geometry.Rect
	for _, f := range fills {
		c.grid.Set(f.X, f.Y, f.Glyph, fg, c.bg)
		r = r.Include(geometry.Pt(f.X, f.Y))
	}
	c.inv.InvalidateAll()
	return Result{Message: fmt.Sprintf("Image loaded: %s", path), Dirty: r.Intersect(geometry.Rect{Max: geometry.Pt(w, h)})}
}
