package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/glyphpaint/internal/input/key"
)

func TestDefaultKeymap(t *testing.T) {
	m := DefaultKeymap()

	tests := []struct {
		spec string
		want Kind
	}{
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
		{"Escape", Quit},
		{"Ctrl+C", Quit},
		{"e", ToggleTool},
		{"n", ClearCanvas},
	}
	for _, tt := range tests {
		got, ok := m.Lookup(key.MustParse(tt.spec))
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v", tt.spec, got, ok, tt.want)
		}
	}

	if _, ok := m.Lookup(key.MustParse("z")); ok {
		t.Error("Lookup(z) should not match")
	}
}

func TestKeymapUpperCaseFallback(t *testing.T) {
	m := DefaultKeymap()
	got, ok := m.Lookup(key.NewRuneEvent('X', key.ModShift))
	if !ok || got != ToggleMode {
		t.Errorf("Lookup(X) = %v, %v; want toggle_mode", got, ok)
	}
}

func TestKeymapFromConfig(t *testing.T) {
	m, err := KeymapFromConfig(map[string]string{
		"w":      "move_up",
		"Ctrl+S": "save",
		"q":      "none",
	})
	if err != nil {
		t.Fatalf("KeymapFromConfig() error: %v", err)
	}

	if k, ok := m.Lookup(key.MustParse("w")); !ok || k != MoveUp {
		t.Errorf("Lookup(w) = %v, %v", k, ok)
	}
	if k, ok := m.Lookup(key.MustParse("<C-s>")); !ok || k != Save {
		t.Errorf("Lookup(<C-s>) = %v, %v", k, ok)
	}
	if _, ok := m.Lookup(key.MustParse("q")); ok {
		t.Error("q should be unbound")
	}
	if k, ok := m.Lookup(key.MustParse("Up")); !ok || k != MoveUp {
		t.Error("defaults should survive overrides")
	}
}

func TestKeymapFromConfigErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"unknown command", map[string]string{"z": "undo"}},
		{"bad key", map[string]string{"Hyper+z": "quit"}},
		{"paint_at", map[string]string{"p": "paint_at"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := KeymapFromConfig(tt.overrides); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBindUnbindable(t *testing.T) {
	m := NewKeymap()
	if err := m.Bind("p", PaintAt); !errors.Is(err, ErrUnbindable) {
		t.Errorf("Bind(PaintAt) error = %v, want ErrUnbindable", err)
	}
}

func TestKeymapHelp(t *testing.T) {
	m := DefaultKeymap()
	help := m.Help(4)
	if len(help) != 3 {
		t.Fatalf("len(Help(4)) = %d, want 3: %q", len(help), help)
	}
	joined := strings.Join(help, "\n")
	for _, want := range []string{"<Space>: toggle pixel", "x: draw mode", "i: load image", "quit"} {
		if !strings.Contains(joined, want) {
			t.Errorf("help missing %q:\n%s", want, joined)
		}
	}

	if err := m.Unbind("i"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(strings.Join(m.Help(4), "\n"), "load image") {
		t.Error("unbound command should not appear in help")
	}
}
