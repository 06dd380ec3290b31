package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dshills/glyphpaint/internal/config/loader"
	"github.com/dshills/glyphpaint/internal/controller"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GLYPHPAINT_"

// Limits and defaults.
const (
	DefaultWidth  = 60
	DefaultHeight = 20
	MaxDimension  = 1000

	DefaultTick = "10ms"
	MaxTick     = time.Second
)

// Config is the on-disk configuration.
type Config struct {
	Canvas  CanvasConfig      `toml:"canvas" yaml:"canvas"`
	Palette PaletteConfig     `toml:"palette" yaml:"palette"`
	Cursor  CursorConfig      `toml:"cursor" yaml:"cursor"`
	Save    SaveConfig        `toml:"save" yaml:"save"`
	Tick    string            `toml:"tick" yaml:"tick"`
	Log     LogConfig         `toml:"log" yaml:"log"`
	Keys    map[string]string `toml:"keys" yaml:"keys"`

	// path is the file the config was loaded from, if any.
	path string
}

// CanvasConfig sizes the grid. Zero fits the terminal.
type CanvasConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// PaletteConfig lists the selectable colors and glyphs in cycle order.
type PaletteConfig struct {
	Colors []string `toml:"colors" yaml:"colors"`
	Glyphs []string `toml:"glyphs" yaml:"glyphs"`
}

// CursorConfig controls the cursor highlight.
type CursorConfig struct {
	Glyph      string `toml:"glyph" yaml:"glyph"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

// SaveConfig controls where and how paintings are written.
type SaveConfig struct {
	Dir    string `toml:"dir" yaml:"dir"`
	Format string `toml:"format" yaml:"format"`
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	colors := controller.DefaultColors()
	names := make([]string, colors.Len())
	for i := range names {
		names[i] = colors.At(i).Name
	}

	glyphs := controller.DefaultGlyphs()
	gs := make([]string, glyphs.Len())
	for i := range gs {
		gs[i] = string(glyphs.At(i))
	}

	return &Config{
		Canvas:  CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Palette: PaletteConfig{Colors: names, Glyphs: gs},
		Cursor:  CursorConfig{Glyph: "+", Foreground: "black", Background: "white"},
		Save:    SaveConfig{Dir: ".", Format: "text"},
		Tick:    DefaultTick,
		Log:     LogConfig{Level: "info"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "glyphpaint", "config.toml")
}

// Load builds a Config from the defaults, the file at path (skipped when
// path is empty) and the environment. The result is not validated; call
// Resolve.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		cfg.path = path
	}
	if err := cfg.ApplyEnv(loader.NewEnvLoader(EnvPrefix).Load()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault is Load on DefaultPath, treating a missing file as empty.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); err != nil {
		path = ""
	}
	return Load(path)
}

// Path returns the file the config was loaded from, or "" when it came
// from defaults and the environment only.
func (c *Config) Path() string {
	return c.path
}

// LoadFile overlays the file at path onto c. Settings absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	err := loader.New().Load(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return err
}

// ApplyEnv applies environment overrides onto c.
func (c *Config) ApplyEnv(overrides []loader.Override) error {
	var errs []error
	for _, o := range overrides {
		if err := c.Set(o.Path, o.Value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Env, err))
		}
	}
	return errors.Join(errs...)
}

// Set assigns a scalar setting from its string form.
func (c *Config) Set(path, value string) error {
	switch path {
	case "canvas.width", "canvas.height":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationError{Path: path, Message: "must be an integer", Value: value, Code: ErrCodeTypeMismatch}
		}
		if path == "canvas.width" {
			c.Canvas.Width = n
		} else {
			c.Canvas.Height = n
		}
	case "log.level":
		c.Log.Level = value
	case "log.file":
		c.Log.File = value
	case "save.dir":
		c.Save.Dir = value
	case "save.format":
		c.Save.Format = value
	case "tick":
		c.Tick = value
	case "cursor.glyph":
		c.Cursor.Glyph = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	return nil
}
