package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/codec"
	"github.com/dshills/glyphpaint/internal/config"
	"github.com/dshills/glyphpaint/internal/input"
	"github.com/dshills/glyphpaint/internal/input/key"
	"github.com/dshills/glyphpaint/internal/renderer/backend"
)

func testSettings(t *testing.T, w, h int) *config.Settings {
	t.Helper()
	s, err := config.Default().Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	s.Width, s.Height = w, h
	s.Tick = time.Millisecond
	s.SaveDir = t.TempDir()
	return s
}

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	be := backend.NewNullBackend(60, 30)
	opts.Backend = be
	if opts.Settings == nil {
		opts.Settings = testSettings(t, 40, 5)
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return app, be
}

func run(t *testing.T, app *Application) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.Run(ctx)
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("New() without a backend should fail")
	}

	s := testSettings(t, 0, 5)
	_, err := New(Options{Settings: s, Backend: backend.NewNullBackend(10, 10)})
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "canvas" {
		t.Errorf("New() with zero width error = %v, want canvas InitError", err)
	}
}

func TestRun_ScriptedSession(t *testing.T) {
	src := input.NewScriptSource(
		input.Cmd(input.ToggleMode),
		input.Cmd(input.MoveRight),
		input.Cmd(input.MoveRight),
		input.Cmd(input.Quit),
	)
	app, be := newTestApp(t, Options{Source: src})

	if err := run(t, app); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for x := 0; x <= 2; x++ {
		if g := app.Grid().Get(x, 0).Glyph; g != '█' {
			t.Errorf("grid (%d,0) = %q, want '█'", x, g)
		}
	}
	if !strings.HasPrefix(be.Line(0), "███") {
		t.Errorf("screen row 0 = %q", be.Line(0))
	}
	if !strings.Contains(be.Line(6), "DRAW") {
		t.Errorf("status row = %q, want DRAW mode", be.Line(6))
	}
	if !strings.Contains(be.Line(6), "(2,0)") {
		t.Errorf("status row = %q, want cursor (2,0)", be.Line(6))
	}
	if !be.Closed() {
		t.Error("backend should be shut down after Run")
	}
	if be.CursorVisible() {
		t.Error("Run should hide the terminal cursor")
	}
	if be.Shows == 0 {
		t.Error("Run never presented a frame")
	}

	snap := app.Metrics().Snapshot()
	if snap.CommandCount != 4 || snap.FrameCount == 0 || snap.CellsWritten == 0 {
		t.Errorf("metrics = %+v", snap)
	}
}

func TestRun_Save(t *testing.T) {
	s := testSettings(t, 40, 5)
	src := input.NewScriptSource(
		input.Cmd(input.TogglePixel),
		input.Cmd(input.Save),
		input.Cmd(input.Quit),
	)
	app, be := newTestApp(t, Options{Settings: s, Source: src})

	if err := run(t, app); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(s.SaveDir, "painting_*.txt"))
	if len(matches) != 1 {
		t.Fatalf("saved files = %v, want one", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "█\n\n\n\n\n" {
		t.Errorf("saved %q", data)
	}
	if !strings.HasPrefix(be.Line(7), "Saved to ") {
		t.Errorf("message row = %q", be.Line(7))
	}
}

func TestRun_SaveFailureKeepsRunning(t *testing.T) {
	s := testSettings(t, 40, 5)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s.SaveDir = filepath.Join(blocker, "sub")

	src := input.NewScriptSource(
		input.Cmd(input.Save),
		input.Cmd(input.MoveRight),
		input.Cmd(input.Quit),
	)
	app, be := newTestApp(t, Options{Settings: s, Source: src})

	if err := run(t, app); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.HasPrefix(be.Line(7), "Error saving") {
		t.Errorf("message row = %q", be.Line(7))
	}
	if app.Controller().Cursor().X != 1 {
		t.Error("session should continue after a failed save")
	}
}

func TestRun_OpenText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.txt")
	if err := os.WriteFile(path, []byte("ab\n c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, be := newTestApp(t, Options{
		Source:   input.NewScriptSource(input.Cmd(input.Quit)),
		OpenPath: path,
	})
	if err := run(t, app); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if app.Grid().Get(1, 0).Glyph != 'b' || app.Grid().Get(1, 1).Glyph != 'c' {
		t.Errorf("grid rows = %q, %q", string(app.Grid().Glyphs()[0]), string(app.Grid().Glyphs()[1]))
	}
	if be.Cell(1, 1).Glyph != 'c' {
		t.Errorf("screen (1,1) = %q", be.Cell(1, 1).Glyph)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	app, _ := newTestApp(t, Options{Source: input.NewScriptSource()})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil on cancel", err)
	}
	if app.IsRunning() {
		t.Error("IsRunning() after Run returned")
	}
}

func TestRun_StopAndAlreadyRunning(t *testing.T) {
	app, _ := newTestApp(t, Options{Source: input.NewScriptSource()})

	errc := make(chan error, 1)
	go func() { errc <- app.Run(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for !app.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := app.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}

	app.Stop()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

type panicSource struct{}

func (panicSource) Poll() (input.Command, bool) { panic("boom") }

func TestRun_PanicRestoresTerminal(t *testing.T) {
	app, be := newTestApp(t, Options{Source: panicSource{}})

	err := run(t, app)
	var perr *RecoveredPanicError
	if !errors.As(err, &perr) || perr.Value != "boom" {
		t.Fatalf("Run() error = %v, want recovered panic", err)
	}
	if perr.Stack == "" {
		t.Error("panic stack was not captured")
	}
	if !be.Closed() {
		t.Error("backend should be shut down after a panic")
	}
}

func TestRun_TerminalSource(t *testing.T) {
	app, be := newTestApp(t, Options{})

	be.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'})
	be.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRight})
	be.PostEvent(backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft, MouseX: 5, MouseY: 3})
	be.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'})

	if err := run(t, app); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	g := app.Grid()
	if g.Get(0, 0).IsEmpty() || g.Get(1, 0).IsEmpty() {
		t.Error("pen-down move from the keyboard did not paint")
	}
	if g.Get(5, 3).IsEmpty() {
		t.Error("mouse click did not paint")
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[palette]\ncolors = [\"gray\", \"red\"]\n\n[keys]\n\"z\" = \"save\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, _ := newTestApp(t, Options{Source: input.NewScriptSource(), ConfigPath: path})
	app.Reload()

	if app.Controller().Color().Name != "gray" {
		t.Errorf("Color() = %q, want gray", app.Controller().Color().Name)
	}
	if kind, ok := app.keymap.Lookup(key.MustParse("z")); !ok || kind != input.Save {
		t.Errorf("z = %v, %v after reload", kind, ok)
	}
	if app.Metrics().Snapshot().ReloadCount != 1 {
		t.Error("reload was not counted")
	}

	if err := os.WriteFile(path, []byte("[palette]\ncolors = []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app.Reload()
	if msg, _ := app.StatusLine().Message(); !strings.HasPrefix(msg, "Config error: palette.colors") {
		t.Errorf("message = %q", msg)
	}
	if app.Controller().Color().Name != "gray" {
		t.Error("a bad reload must keep the previous palette")
	}
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tick = \"10ms\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, _ := newTestApp(t, Options{Source: input.NewScriptSource(), ConfigPath: path})
	app.startWatcher()
	defer app.stopWatcher()
	if app.watcher == nil {
		t.Fatal("watcher did not start")
	}

	if err := os.WriteFile(path, []byte("[palette]\ncolors = [\"cyan\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		app.drainReloads()
		if app.Controller().Color().Name == "cyan" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("Color() = %q after config write, want cyan", app.Controller().Color().Name)
}

func TestIsImagePath(t *testing.T) {
	tests := map[string]bool{
		"cat.png":      true,
		"CAT.JPG":      true,
		"a/b.webp":     true,
		"photo.tiff":   true,
		"art.txt":      false,
		"painting":     false,
		"painting.ans": false,
	}
	for path, want := range tests {
		if got := isImagePath(path); got != want {
			t.Errorf("isImagePath(%q) = %v, want %v", path, got, want)
		}
	}
}

type fixedPathStore struct{ path string }

func (s fixedPathStore) Save(*canvas.Grid) (string, error) { return s.path, nil }

func (s fixedPathStore) ImportImage(string, int, int) ([]codec.Fill, error) {
	return nil, codec.ErrUnreadableImage
}

func TestRun_StatusRowsUseTerminalWidth(t *testing.T) {
	be := backend.NewNullBackend(80, 10)
	src := input.NewScriptSource(input.Cmd(input.Save), input.Cmd(input.Quit))
	app, err := New(Options{
		Settings:    testSettings(t, 8, 3),
		Backend:     be,
		Source:      src,
		Persistence: fixedPathStore{path: "./painting_1700000000.txt"},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := run(t, app); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := app.Renderer().LineWidth(); got != 80 {
		t.Errorf("line width = %d, want 80", got)
	}
	if !strings.HasPrefix(be.Line(5), "Saved to ./painting_1700000000.txt") {
		t.Errorf("message row = %q, want the full path", be.Line(5))
	}
	if !strings.Contains(be.Line(4), "(0,0)") {
		t.Errorf("status row = %q, want the cursor position", be.Line(4))
	}

	snap := app.Metrics().Snapshot()
	if snap.SinkMoves == 0 || snap.SinkWrites == 0 {
		t.Errorf("sink counters not recorded: %+v", snap)
	}
}
