package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/codec"
	"github.com/dshills/glyphpaint/internal/controller"
	"github.com/dshills/glyphpaint/internal/input"
	"github.com/dshills/glyphpaint/internal/input/key"
	"github.com/dshills/glyphpaint/internal/renderer"
)

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Settings is a validated Config converted to runtime values.
type Settings struct {
	Width, Height int

	Colors    controller.Palette[controller.NamedColor]
	Glyphs    controller.Palette[rune]
	Highlight renderer.HighlightRule

	SaveDir    string
	SaveFormat codec.Format

	Tick time.Duration

	LogLevel string
	LogFile  string

	Keymap *input.Keymap
}

// glyphWidth measures glyphs the way a non East Asian terminal draws them.
var glyphWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Resolve validates c and converts it. All problems are reported
// together as joined *ValidationError values.
func (c *Config) Resolve() (*Settings, error) {
	s := &Settings{
		Width:    c.Canvas.Width,
		Height:   c.Canvas.Height,
		SaveDir:  c.Save.Dir,
		LogLevel: strings.ToLower(strings.TrimSpace(c.Log.Level)),
		LogFile:  c.Log.File,
	}
	if s.SaveDir == "" {
		s.SaveDir = "."
	}

	var errs []error
	fail := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if s.Width < 0 || s.Width > MaxDimension {
		fail("canvas.width", fmt.Sprintf("must be between 0 and %d", MaxDimension), s.Width, ErrCodeOutOfRange)
	}
	if s.Height < 0 || s.Height > MaxDimension {
		fail("canvas.height", fmt.Sprintf("must be between 0 and %d", MaxDimension), s.Height, ErrCodeOutOfRange)
	}

	if len(c.Palette.Colors) == 0 {
		fail("palette.colors", "must not be empty", c.Palette.Colors, ErrCodeRequiredMissing)
	} else if colors, err := controller.ColorPalette(c.Palette.Colors); err != nil {
		fail("palette.colors", err.Error(), c.Palette.Colors, ErrCodePatternMismatch)
	} else {
		s.Colors = colors
	}

	if len(c.Palette.Glyphs) == 0 {
		fail("palette.glyphs", "must not be empty", c.Palette.Glyphs, ErrCodeRequiredMissing)
	} else {
		glyphs := make([]rune, 0, len(c.Palette.Glyphs))
		for i, g := range c.Palette.Glyphs {
			r, ok := singleGlyph(g)
			if !ok {
				fail(fmt.Sprintf("palette.glyphs[%d]", i), "must be one single-column character", g, ErrCodePatternMismatch)
				continue
			}
			glyphs = append(glyphs, r)
		}
		if len(glyphs) == len(c.Palette.Glyphs) {
			s.Glyphs, _ = controller.NewPalette(glyphs...)
		}
	}

	s.Highlight = renderer.DefaultHighlight()
	if c.Cursor.Glyph != "" {
		if r, ok := singleGlyph(c.Cursor.Glyph); ok {
			s.Highlight.EmptyGlyph = r
		} else {
			fail("cursor.glyph", "must be one single-column character", c.Cursor.Glyph, ErrCodePatternMismatch)
		}
	}
	if c.Cursor.Foreground != "" {
		if col, err := canvas.ParseColor(c.Cursor.Foreground); err == nil {
			s.Highlight.Fg = col
		} else {
			fail("cursor.foreground", err.Error(), c.Cursor.Foreground, ErrCodePatternMismatch)
		}
	}
	if c.Cursor.Background != "" {
		if col, err := canvas.ParseColor(c.Cursor.Background); err == nil {
			s.Highlight.Bg = col
		} else {
			fail("cursor.background", err.Error(), c.Cursor.Background, ErrCodePatternMismatch)
		}
	}

	if f, err := codec.ParseFormat(c.Save.Format); err != nil {
		fail("save.format", "must be text or ansi", c.Save.Format, ErrCodeInvalidEnum)
	} else {
		s.SaveFormat = f
	}

	tick := c.Tick
	if tick == "" {
		tick = DefaultTick
	}
	if d, err := time.ParseDuration(tick); err != nil {
		fail("tick", "must be a duration such as 10ms", c.Tick, ErrCodeTypeMismatch)
	} else if d <= 0 || d > MaxTick {
		fail("tick", fmt.Sprintf("must be positive and at most %s", MaxTick), c.Tick, ErrCodeOutOfRange)
	} else {
		s.Tick = d
	}

	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if !slices.Contains(LogLevels, s.LogLevel) {
		fail("log.level", "must be one of "+strings.Join(LogLevels, ", "), c.Log.Level, ErrCodeInvalidEnum)
	}

	keyErrs := len(errs)
	for spec, name := range c.Keys {
		if _, err := key.Parse(spec); err != nil {
			fail("keys."+spec, err.Error(), spec, ErrCodePatternMismatch)
			continue
		}
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" || n == "none" {
			continue
		}
		if kind, ok := input.KindFromName(n); !ok || kind == input.PaintAt {
			fail("keys."+spec, "unknown command", name, ErrCodeInvalidEnum)
		}
	}
	if len(errs) == keyErrs {
		km, err := input.KeymapFromConfig(c.Keys)
		if err != nil {
			fail("keys", err.Error(), c.Keys, ErrCodeInvalidEnum)
		}
		s.Keymap = km
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

func singleGlyph(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || glyphWidth.RuneWidth(r) != 1 {
		return 0, false
	}
	return r, true
}
