package input

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/dshills/glyphpaint/internal/input/key"
)

// ErrUnbindable is returned when binding a command that needs arguments
// a key press cannot supply.
var ErrUnbindable = errors.New("command cannot be bound to a key")

// Binding maps a key specification to a command.
type Binding struct {
	Keys string
	Kind Kind
}

// DefaultBindings are the bindings of a fresh Keymap.
var DefaultBindings = []Binding{
	{"Up", MoveUp},
	{"Down", MoveDown},
	{"Left", MoveLeft},
	{"Right", MoveRight},
	{"Space", TogglePixel},
	{"x", ToggleMode},
	{"c", CycleColor},
	{"l", CycleGlyph},
	{"v", LineToLast},
	{"f", FloodFill},
	{"s", Save},
	{"i", LoadImage},
	{"q", Quit},
	{"<Esc>", Quit},
	{"Ctrl+C", Quit},
	{"e", ToggleTool},
	{"n", ClearCanvas},
}

// Keymap decodes key events into command kinds.
type Keymap struct {
	bindings map[key.Event]Kind
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[key.Event]Kind)}
}

// DefaultKeymap creates a keymap holding DefaultBindings.
func DefaultKeymap() *Keymap {
	m := NewKeymap()
	for _, b := range DefaultBindings {
		if err := m.Bind(b.Keys, b.Kind); err != nil {
			panic("invalid default binding " + b.Keys + ": " + err.Error())
		}
	}
	return m
}

// KeymapFromConfig starts from the default bindings and applies
// overrides mapping key specs to command names. A command name of
// "none" or "" removes the binding.
func KeymapFromConfig(overrides map[string]string) (*Keymap, error) {
	m := DefaultKeymap()

	specs := make([]string, 0, len(overrides))
	for spec := range overrides {
		specs = append(specs, spec)
	}
	slices.Sort(specs)

	for _, spec := range specs {
		name := overrides[spec]
		if n := strings.TrimSpace(strings.ToLower(name)); n == "" || n == "none" {
			if err := m.Unbind(spec); err != nil {
				return nil, err
			}
			continue
		}
		kind, ok := KindFromName(name)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown command %q", spec, name)
		}
		if err := m.Bind(spec, kind); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Bind maps the key spec to kind, replacing any previous binding.
func (m *Keymap) Bind(spec string, kind Kind) error {
	if kind == KindNone || kind == PaintAt {
		return fmt.Errorf("%w: %s", ErrUnbindable, kind)
	}
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("key %q: %w", spec, err)
	}
	m.bindings[ev] = kind
	return nil
}

// Unbind removes the binding for spec.
func (m *Keymap) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("key %q: %w", spec, err)
	}
	delete(m.bindings, ev)
	return nil
}

// Lookup returns the command bound to ev. Unmodified letters fall back
// to their lower-case binding, so "X" triggers what "x" is bound to.
func (m *Keymap) Lookup(ev key.Event) (Kind, bool) {
	ev = ev.Normalize()
	if kind, ok := m.bindings[ev]; ok {
		return kind, true
	}
	if ev.IsChar() && unicode.IsUpper(ev.Rune) {
		kind, ok := m.bindings[key.NewRuneEvent(unicode.ToLower(ev.Rune), ev.Modifiers)]
		return kind, ok
	}
	return KindNone, false
}

// Len returns the number of bindings.
func (m *Keymap) Len() int {
	return len(m.bindings)
}

// KeysFor returns the sorted key names bound to kind.
func (m *Keymap) KeysFor(kind Kind) []string {
	var keys []string
	for ev, k := range m.bindings {
		if k == kind {
			keys = append(keys, ev.String())
		}
	}
	slices.Sort(keys)
	return keys
}

// helpEntries lists commands in the order the help block shows them.
var helpEntries = []struct {
	label string
	kinds []Kind
}{
	{"move", []Kind{MoveUp, MoveDown, MoveLeft, MoveRight}},
	{"toggle pixel", []Kind{TogglePixel}},
	{"draw mode", []Kind{ToggleMode}},
	{"color", []Kind{CycleColor}},
	{"glyph", []Kind{CycleGlyph}},
	{"line to last", []Kind{LineToLast}},
	{"fill", []Kind{FloodFill}},
	{"eraser", []Kind{ToggleTool}},
	{"clear", []Kind{ClearCanvas}},
	{"save", []Kind{Save}},
	{"load image", []Kind{LoadImage}},
	{"quit", []Kind{Quit}},
}

// Help returns the help block describing the current bindings, with
// perLine entries on each line.
func (m *Keymap) Help(perLine int) []string {
	perLine = max(1, perLine)

	var entries []string
	for _, e := range helpEntries {
		var keys []string
		for _, kind := range e.kinds {
			keys = append(keys, m.KeysFor(kind)...)
		}
		if len(keys) == 0 {
			continue
		}
		entries = append(entries, strings.Join(keys, "/")+": "+e.label)
	}

	var lines []string
	for chunk := range slices.Chunk(entries, perLine) {
		lines = append(lines, strings.Join(chunk, " | "))
	}
	return lines
}
