package loader

import (
	"os"
	"slices"
	"strings"
)

// LookupFunc returns the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLoader collects configuration overrides from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "GLYPHPAINT_")
	mapping map[string]string // Env var suffix -> config path
	lookup  LookupFunc
}

// NewEnvLoader creates a loader for prefix with the default mappings.
// The prefix should include the trailing underscore (e.g., "GLYPHPAINT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"WIDTH":        "canvas.width",
		"HEIGHT":       "canvas.height",
		"LOG_LEVEL":    "log.level",
		"LOG_FILE":     "log.file",
		"SAVE_DIR":     "save.dir",
		"TICK":         "tick",
		"CURSOR_GLYPH": "cursor.glyph",
	}
}

// SetLookup replaces the environment lookup, for tests.
func (l *EnvLoader) SetLookup(fn LookupFunc) {
	if fn == nil {
		fn = os.LookupEnv
	}
	l.lookup = fn
}

// Override is one environment value addressed to a config path.
type Override struct {
	Env   string
	Path  string
	Value string
}

// Load returns the overrides present in the environment, sorted by config
// path. Empty values are treated as set.
func (l *EnvLoader) Load() []Override {
	var out []Override
	for name, path := range l.mapping {
		env := l.prefix + name
		if val, ok := l.lookup(env); ok {
			out = append(out, Override{Env: env, Path: path, Value: strings.TrimSpace(val)})
		}
	}
	slices.SortFunc(out, func(a, b Override) int { return strings.Compare(a.Path, b.Path) })
	return out
}
