package input

import "github.com/dshills/glyphpaint/internal/input/key"

// Prompt collects a line of text from key events.
type Prompt struct {
	label  string
	buffer []rune
	active bool
}

// Open starts collecting text under label.
func (p *Prompt) Open(label string) {
	p.label = label
	p.buffer = p.buffer[:0]
	p.active = true
}

// Active reports whether the prompt is collecting text.
func (p *Prompt) Active() bool {
	return p.active
}

// Label returns the prompt label.
func (p *Prompt) Label() string {
	return p.label
}

// Text returns the text typed so far.
func (p *Prompt) Text() string {
	return string(p.buffer)
}

// Feed handles one key event. It returns the entered text and true when
// the prompt is submitted with Enter; Escape cancels it.
func (p *Prompt) Feed(ev key.Event) (string, bool) {
	if !p.active {
		return "", false
	}
	switch {
	case ev.Key == key.KeyEnter:
		p.active = false
		return string(p.buffer), true
	case ev.Key == key.KeyEscape:
		p.active = false
	case ev.Key == key.KeyBackspace:
		if len(p.buffer) > 0 {
			p.buffer = p.buffer[:len(p.buffer)-1]
		}
	case ev.IsChar():
		p.buffer = append(p.buffer, ev.Rune)
	}
	return "", false
}
