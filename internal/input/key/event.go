package key

import (
	"strings"
	"unicode"

	"github.com/dshills/glyphpaint/internal/renderer/backend"
)

// Event represents a single key press. Events are comparable and, once
// normalized, usable as map keys.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a normalized key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}.Normalize()
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Normalize returns the canonical form of e. Shift is part of the
// character for rune events, and Ctrl combinations use lower case.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.HasCtrl() {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl,
// Alt or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// String returns a Vim-style representation.
// Examples: "a", "<Space>", "<Esc>", "<C-s>", "<Up>"
func (e Event) String() string {
	if e.IsChar() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if e.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if e.Modifiers.Has(ModMeta) {
		parts = append(parts, "D")
	}
	if e.Modifiers.Has(ModShift) && e.Key != KeyRune {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "CR"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	default:
		keyName = e.Key.String()
	}
	parts = append(parts, keyName)

	return "<" + strings.Join(parts, "-") + ">"
}

// FromBackend converts a terminal key event to a normalized Event.
// The second result is false for events that are not key presses.
func FromBackend(ev backend.Event) (Event, bool) {
	if ev.Type != backend.EventKey {
		return Event{}, false
	}

	mods := fromBackendMod(ev.Mod)
	var k Key
	switch ev.Key {
	case backend.KeyRune:
		return NewRuneEvent(ev.Rune, mods), true
	case backend.KeyCtrlC:
		return NewRuneEvent('c', mods.With(ModCtrl)), true
	case backend.KeyCtrlL:
		return NewRuneEvent('l', mods.With(ModCtrl)), true
	case backend.KeyCtrlO:
		return NewRuneEvent('o', mods.With(ModCtrl)), true
	case backend.KeyCtrlS:
		return NewRuneEvent('s', mods.With(ModCtrl)), true
	case backend.KeyEscape:
		k = KeyEscape
	case backend.KeyEnter:
		k = KeyEnter
	case backend.KeyTab:
		k = KeyTab
	case backend.KeyBackspace:
		k = KeyBackspace
	case backend.KeyDelete:
		k = KeyDelete
	case backend.KeyHome:
		k = KeyHome
	case backend.KeyEnd:
		k = KeyEnd
	case backend.KeyPageUp:
		k = KeyPageUp
	case backend.KeyPageDown:
		k = KeyPageDown
	case backend.KeyUp:
		k = KeyUp
	case backend.KeyDown:
		k = KeyDown
	case backend.KeyLeft:
		k = KeyLeft
	case backend.KeyRight:
		k = KeyRight
	default:
		return Event{}, false
	}
	return NewSpecialEvent(k, mods), true
}

func fromBackendMod(m backend.ModMask) Modifier {
	var mods Modifier
	if m.Has(backend.ModShift) {
		mods = mods.With(ModShift)
	}
	if m.Has(backend.ModCtrl) {
		mods = mods.With(ModCtrl)
	}
	if m.Has(backend.ModAlt) {
		mods = mods.With(ModAlt)
	}
	if m.Has(backend.ModMeta) {
		mods = mods.With(ModMeta)
	}
	return mods
}
