package input

import (
	"strings"
	"sync"

	"github.com/dshills/glyphpaint/internal/geometry"
	"github.com/dshills/glyphpaint/internal/input/key"
	"github.com/dshills/glyphpaint/internal/renderer/backend"
)

// DefaultEventBuffer is the capacity of the event channel between the
// pump goroutine and Poll.
const DefaultEventBuffer = 64

// LoadImagePrompt is the label shown while a LoadImage path is typed.
const LoadImagePrompt = "Image file"

// TerminalSource decodes backend events into commands.
//
// A pump goroutine blocks on the backend's PollEvent and forwards events
// over a buffered channel; Poll drains that channel without blocking.
// Everything except the pump runs on the caller's goroutine.
type TerminalSource struct {
	be     backend.Backend
	keymap *Keymap
	prompt Prompt

	// canvas is the screen area that maps to the grid for mouse input.
	canvas geometry.Rect

	onResize func(width, height int)

	events   chan backend.Event
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTerminalSource creates a source reading from be. Mouse clicks inside
// canvas become PaintAt commands relative to its top-left corner.
func NewTerminalSource(be backend.Backend, km *Keymap, canvas geometry.Rect) *TerminalSource {
	if km == nil {
		km = DefaultKeymap()
	}
	return &TerminalSource{
		be:     be,
		keymap: km,
		canvas: canvas,
		events: make(chan backend.Event, DefaultEventBuffer),
		done:   make(chan struct{}),
	}
}

// Start launches the event pump.
func (s *TerminalSource) Start() {
	s.wg.Add(1)
	go s.pump()
}

func (s *TerminalSource) pump() {
	defer s.wg.Done()
	for {
		ev := s.be.PollEvent()
		if ev.Type == backend.EventNone || ev.Type == backend.EventInterrupt {
			select {
			case <-s.done:
				return
			default:
				continue
			}
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Stop asks the pump to exit. The pump is blocked in PollEvent, so it
// returns once the backend wakes it; Stop posts an interrupt to do that.
func (s *TerminalSource) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.be.PostEvent(backend.Event{Type: backend.EventInterrupt})
	})
}

// Wait blocks until the pump has exited.
func (s *TerminalSource) Wait() {
	s.wg.Wait()
}

// SetKeymap replaces the keymap. It must be called on the Poll goroutine.
func (s *TerminalSource) SetKeymap(km *Keymap) {
	if km != nil {
		s.keymap = km
	}
}

// OnResize registers a callback run from Poll when the terminal resizes.
func (s *TerminalSource) OnResize(fn func(width, height int)) {
	s.onResize = fn
}

// Prompt returns the prompt state for display.
func (s *TerminalSource) Prompt() (active bool, label, text string) {
	return s.prompt.Active(), s.prompt.Label(), s.prompt.Text()
}

// Poll returns the next decoded command. Events that decode to nothing
// (unbound keys, resizes, prompt typing) are consumed until a command is
// found or the queue is empty.
func (s *TerminalSource) Poll() (Command, bool) {
	for {
		select {
		case ev := <-s.events:
			if cmd, ok := s.decode(ev); ok {
				return cmd, true
			}
		default:
			return Command{}, false
		}
	}
}

func (s *TerminalSource) decode(ev backend.Event) (Command, bool) {
	switch ev.Type {
	case backend.EventKey:
		k, ok := key.FromBackend(ev)
		if !ok {
			return Command{}, false
		}
		return s.decodeKey(k)

	case backend.EventMouse:
		if ev.MouseButton != backend.MouseLeft || s.prompt.Active() {
			return Command{}, false
		}
		p := geometry.Pt(ev.MouseX, ev.MouseY)
		if !s.canvas.Contains(p) {
			return Command{}, false
		}
		return PaintAtCmd(p.X-s.canvas.Min.X, p.Y-s.canvas.Min.Y), true

	case backend.EventResize:
		if s.onResize != nil {
			s.onResize(ev.Width, ev.Height)
		}
	}
	return Command{}, false
}

func (s *TerminalSource) decodeKey(k key.Event) (Command, bool) {
	if s.prompt.Active() {
		text, done := s.prompt.Feed(k)
		if !done {
			return Command{}, false
		}
		path := strings.TrimSpace(text)
		if path == "" {
			return Command{}, false
		}
		return LoadImageCmd(path), true
	}

	kind, ok := s.keymap.Lookup(k)
	if !ok {
		return Command{}, false
	}
	if kind == LoadImage {
		s.prompt.Open(LoadImagePrompt)
		return Command{}, false
	}
	return Cmd(kind), true
}
