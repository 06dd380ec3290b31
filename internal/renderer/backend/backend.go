// Package backend provides the terminal backends the renderer draws to.
package backend

import (
	"strings"
	"sync"

	"github.com/dshills/glyphpaint/internal/canvas"
	"github.com/dshills/glyphpaint/internal/renderer"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlL
	KeyCtrlO
	KeyCtrlS
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// Backend is a display surface the application can run on.
// Drawing goes through the embedded renderer.Sink; Show makes it visible.
type Backend interface {
	renderer.Sink

	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending writes to the display.
	Show()

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// It returns an EventNone event once the backend has shut down.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()
}

// NullBackend is an in-memory backend for testing.
// It keeps the screen contents and counts sink calls.
type NullBackend struct {
	width, height int
	cells         [][]canvas.Cell
	styles        [][]renderer.Style
	penX, penY    int
	cursorVisible bool
	mouse         bool
	events        chan Event

	mu     sync.Mutex
	closed bool

	// Moves and Writes count MoveCursorTo and WriteText calls.
	Moves  int
	Writes int
	// Shows counts Show calls.
	Shows int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:         width,
		height:        height,
		cursorVisible: true,
		events:        make(chan Event, 100),
	}
	b.alloc()
	return b
}

func (b *NullBackend) alloc() {
	b.cells = make([][]canvas.Cell, b.height)
	b.styles = make([][]renderer.Style, b.height)
	for i := range b.cells {
		b.cells[i] = make([]canvas.Cell, b.width)
		b.styles[i] = make([]renderer.Style, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = canvas.EmptyCell()
			b.styles[i][j] = renderer.DefaultStyle()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) MoveCursorTo(x, y int) {
	b.penX, b.penY = x, y
	b.Moves++
}

func (b *NullBackend) WriteText(text string, style renderer.Style) {
	b.Writes++
	for _, r := range text {
		if b.penX >= 0 && b.penX < b.width && b.penY >= 0 && b.penY < b.height {
			b.cells[b.penY][b.penX] = canvas.NewCell(r, style.Foreground, style.Background)
			b.styles[b.penY][b.penX] = style
		}
		b.penX++
	}
}

func (b *NullBackend) Clear() {
	b.alloc()
}

func (b *NullBackend) Show() {
	b.Shows++
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	ev, ok := <-b.events
	if !ok {
		return Event{Type: EventNone}
	}
	return ev
}

func (b *NullBackend) PostEvent(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) EnableMouse()  { b.mouse = true }
func (b *NullBackend) DisableMouse() { b.mouse = false }

// Cell returns the cell drawn at (x, y).
func (b *NullBackend) Cell(x, y int) canvas.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return canvas.EmptyCell()
}

// StyleAt returns the style drawn at (x, y).
func (b *NullBackend) StyleAt(x, y int) renderer.Style {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.styles[y][x]
	}
	return renderer.DefaultStyle()
}

// Line returns the glyphs of row y as a string.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// CursorVisible reports whether HideCursor has not been called.
func (b *NullBackend) CursorVisible() bool {
	return b.cursorVisible
}

// Closed reports whether Shutdown has been called.
func (b *NullBackend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool {
	return b.mouse
}

// Resize simulates a terminal resize, clearing the screen and queueing
// a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.alloc()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
