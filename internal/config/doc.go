// Package config provides the configuration system for Glyphpaint.
//
// The config package loads the typed Config, overlays environment
// variables, and resolves it into the palettes, keymap and timing the
// application runs with.
//
// # Architecture
//
// Later sources override earlier ones:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (cmd/glyphpaint)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GLYPHPAINT_WIDTH, GLYPHPAINT_TICK, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/glyphpaint/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML and YAML decoding, environment overrides
//   - watcher: fsnotify-based file watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings, err := cfg.Resolve()
//	if err != nil {
//	    // One or more *ValidationError joined together.
//	}
//
// # File Format
//
//	[canvas]
//	width = 60
//	height = 20
//
//	[palette]
//	colors = ["white", "red", "#ff8800"]
//	glyphs = ["█", "▓", "*", " "]
//
//	[save]
//	dir = "~/paintings"
//	format = "ansi"
//
//	[keys]
//	"<C-s>" = "save"
//	"q" = "none"
package config
