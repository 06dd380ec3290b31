// Package app provides the main application structure and coordination
// for Glyphpaint. It wires the grid, controller, renderer and input
// source together and runs the tick loop.
package app

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/codec"
	"github.com/dshills/glyphpaint/internal/config"
	"github.com/dshills/glyphpaint/internal/config/watcher"
	"github.com/dshills/glyphpaint/internal/controller"
	"github.com/dshills/glyphpaint/internal/geometry"
	"github.com/dshills/glyphpaint/internal/input"
	"github.com/dshills/glyphpaint/internal/renderer"
	"github.com/dshills/glyphpaint/internal/renderer/backend"
	"github.com/dshills/glyphpaint/internal/renderer/statusline"
)

// HelpPerLine is the number of key bindings per help row.
const HelpPerLine = 2

// Application is the central coordinator for a painting session.
// The grid, controller and renderer are only touched by the Run loop.
type Application struct {
	settings *config.Settings

	grid     *canvas.Grid
	ctrl     *controller.Controller
	renderer *renderer.Renderer
	status   *statusline.StatusLine
	backend  backend.Backend
	source   input.Source
	keymap   *input.Keymap

	configPath string
	watcher    *watcher.Watcher

	logger  *Logger
	metrics *Metrics

	// State
	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
	session  session

	opts Options
}

// Options configures the application.
type Options struct {
	// Settings is the resolved configuration. Width and Height must be
	// positive by now.
	Settings *config.Settings

	// Backend is the terminal the session draws to.
	Backend backend.Backend

	// Source supplies commands. Defaults to a TerminalSource over Backend.
	Source input.Source

	// Persistence saves and imports. Defaults to a codec.Store in the
	// configured save directory.
	Persistence controller.Persistence

	// ConfigPath is watched for live reload when set.
	ConfigPath string

	// OpenPath is a painting or image loaded before the first frame.
	OpenPath string

	Logger  *Logger
	Metrics *Metrics
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Settings == nil {
		s, err := config.Default().Resolve()
		if err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
		opts.Settings = s
	}
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: errors.New("no backend")}
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}

	s := opts.Settings
	grid, err := canvas.New(s.Width, s.Height)
	if err != nil {
		return nil, &InitError{Component: "canvas", Err: err}
	}

	app := &Application{
		settings:   s,
		grid:       grid,
		backend:    opts.Backend,
		keymap:     s.Keymap,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		done:       make(chan struct{}),
		opts:       opts,
	}
	if app.keymap == nil {
		app.keymap = input.DefaultKeymap()
	}

	app.renderer = renderer.New(opts.Backend, s.Width, s.Height, s.Highlight)

	store := opts.Persistence
	if store == nil {
		store = codec.NewStore(s.SaveDir, s.SaveFormat)
	}
	app.ctrl = controller.New(grid, controller.Options{
		Colors:      s.Colors,
		Glyphs:      s.Glyphs,
		Invalidator: app.renderer,
		Persistence: store,
	})

	app.status = statusline.New()
	app.status.SetHelp(app.keymap.Help(HelpPerLine))

	app.source = opts.Source
	if app.source == nil {
		ts := input.NewTerminalSource(opts.Backend, app.keymap, app.canvasRect())
		ts.OnResize(app.handleResize)
		app.source = ts
	}

	return app, nil
}

// Run starts the session and runs the tick loop until Quit, Stop or ctx
// is cancelled. The terminal is restored on every exit path, including a
// panic, which is returned as a *RecoveredPanicError.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.session.Start(app); err != nil {
		return err
	}
	defer app.session.Stop()
	defer app.recoverPanic(&err)

	termWidth, _ := app.backend.Size()
	app.renderer.SetLineWidth(termWidth)

	app.startWatcher()
	defer app.stopWatcher()

	if app.opts.OpenPath != "" {
		app.open(app.opts.OpenPath)
	}

	app.logger.Info("session started %dx%d", app.settings.Width, app.settings.Height)
	defer func() {
		app.logger.Debug("metrics %s", app.metrics.Snapshot())
		app.logger.Info("session ended")
	}()

	return app.loop(ctx)
}

// loop is the single-threaded tick loop: poll, apply, render, sleep.
func (app *Application) loop(ctx context.Context) error {
	ticker := time.NewTicker(app.settings.Tick)
	defer ticker.Stop()

	app.draw()
	for {
		app.drainReloads()

		if cmd, ok := app.source.Poll(); ok {
			if err := app.apply(cmd); errors.Is(err, ErrQuit) {
				return nil
			}
		}
		app.draw()

		select {
		case <-ctx.Done():
			app.logger.Info("interrupted: %v", context.Cause(ctx))
			return nil
		case <-app.done:
			return nil
		case <-ticker.C:
		}
	}
}

// apply runs one command through the controller and reports its result.
func (app *Application) apply(cmd input.Command) error {
	timer := StartTimer()
	res := app.ctrl.Apply(cmd)
	app.metrics.RecordCommand(timer.Elapsed())
	app.logger.Debug("command %s", cmd)

	if res.Message != "" {
		if res.Level == controller.LevelError {
			app.status.SetMessage(res.Message, statusline.MessageError, statusline.DefaultMessageTTL)
			app.logger.WithComponent("codec").Error("%s", NewComponentError("codec", cmd.Kind.String(), res.Err))
		} else {
			app.status.SetMessage(res.Message, statusline.MessageInfo, statusline.DefaultMessageTTL)
			app.logger.Info("%s", res.Message)
		}
	}

	if res.Quit {
		return ErrQuit
	}
	return nil
}

// draw renders the canvas and the status area and presents them if
// anything changed.
func (app *Application) draw() {
	app.syncStatus()

	timer := StartTimer()
	cells := app.renderer.Render(app.grid, app.ctrl.Cursor())
	rows := app.status.Render(app.renderer, app.statusTop())
	if cells > 0 || rows > 0 {
		app.backend.Show()
	}
	app.metrics.RecordFrame(timer.Elapsed(), cells)
	st := app.renderer.Stats()
	app.metrics.RecordSink(st.Moves, st.Writes)
}

// syncStatus copies controller and prompt state into the status line.
func (app *Application) syncStatus() {
	c := app.ctrl.Cursor()
	app.status.SetMode(app.ctrl.Mode().String())
	app.status.SetTool(app.ctrl.Tool().String())
	app.status.SetPosition(c.X, c.Y)
	app.status.SetColor(app.ctrl.Color().Name)
	app.status.SetGlyph(app.ctrl.Glyph())

	if p, ok := app.source.(interface {
		Prompt() (bool, string, string)
	}); ok {
		app.status.SetPrompt(p.Prompt())
	}
}

// statusTop is the first row below the canvas and its spacer row.
func (app *Application) statusTop() int {
	return app.grid.Height() + 1
}

func (app *Application) canvasRect() geometry.Rect {
	return geometry.Rect{Max: geometry.Pt(app.grid.Size())}
}

// handleResize redraws everything after the terminal changes size. The
// grid keeps its size; status rows follow the terminal width.
func (app *Application) handleResize(width, height int) {
	app.logger.Debug("terminal resized to %dx%d", width, height)
	app.renderer.SetLineWidth(width)
	app.backend.Clear()
	app.renderer.InvalidateAll()
}

// open loads a saved painting or imports an image before the first frame.
func (app *Application) open(path string) {
	if isImagePath(path) {
		_ = app.apply(input.LoadImageCmd(path))
		return
	}

	n, err := codec.NewStore(app.settings.SaveDir, app.settings.SaveFormat).Load(path, app.grid)
	if err != nil {
		app.status.SetMessage("Error loading: "+err.Error(), statusline.MessageError, statusline.DefaultMessageTTL)
		app.logger.WithComponent("codec").Error("%v", err)
		return
	}
	app.renderer.InvalidateAll()
	app.status.SetMessage("Loaded "+path, statusline.MessageInfo, statusline.DefaultMessageTTL)
	app.logger.Info("loaded %s (%d cells)", path, n)
}

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func isImagePath(path string) bool {
	return slices.Contains(imageExts, strings.ToLower(filepath.Ext(path)))
}

// Stop asks a running loop to return.
func (app *Application) Stop() {
	app.stopOnce.Do(func() { close(app.done) })
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Grid returns the canvas grid. It must not be touched while Run is
// active.
func (app *Application) Grid() *canvas.Grid {
	return app.grid
}

// Controller returns the interaction controller.
func (app *Application) Controller() *controller.Controller {
	return app.ctrl
}

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// StatusLine returns the status line.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
