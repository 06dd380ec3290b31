package statusline

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/glyphpaint/internal/renderer"
	"github.com/dshills/glyphpaint/internal/renderer/backend"
)

func TestStatusBar(t *testing.T) {
	s := New()
	s.SetMode("DRAW")
	s.SetTool("ERASER")
	s.SetPosition(3, 4)
	s.SetColor("red")
	s.SetGlyph('#')

	lines := s.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(lines))
	}
	bar := lines[0].Text
	for _, want := range []string{"DRAW", "ERASER", "(3,4)", "color: red", "'#'"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}
	if !lines[0].Style.Attributes.Has(renderer.AttrBold) {
		t.Error("status bar should be bold")
	}
}

func TestMessageExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New()
	s.SetClock(func() time.Time { return now })

	s.SetMessage("saved", MessageInfo, time.Second)
	if msg, _ := s.Message(); msg != "saved" {
		t.Fatalf("Message() = %q, want %q", msg, "saved")
	}
	if got := s.Lines()[1].Text; got != "saved" {
		t.Errorf("message row = %q, want %q", got, "saved")
	}

	now = now.Add(2 * time.Second)
	if msg, typ := s.Message(); msg != "" || typ != MessageNone {
		t.Errorf("Message() after expiry = %q/%d, want empty", msg, typ)
	}
}

func TestMessageWithoutTTL(t *testing.T) {
	now := time.Now()
	s := New()
	s.SetClock(func() time.Time { return now })
	s.SetMessage("sticky", MessageWarning, 0)

	now = now.Add(time.Hour)
	if msg, typ := s.Message(); msg != "sticky" || typ != MessageWarning {
		t.Errorf("Message() = %q/%d, want sticky warning", msg, typ)
	}
}

func TestPromptReplacesMessage(t *testing.T) {
	s := New()
	s.SetMessage("hello", MessageError, 0)
	s.SetPrompt(true, "Load image", "cat.p")

	if got := s.Lines()[1].Text; got != "Load image: cat.p_" {
		t.Errorf("prompt row = %q", got)
	}

	s.SetPrompt(false, "", "")
	if got := s.Lines()[1].Text; got != "hello" {
		t.Errorf("message row after prompt = %q, want %q", got, "hello")
	}
}

func TestRenderOnlyOnChange(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	r := renderer.New(b, 40, 5, renderer.DefaultHighlight())

	s := New()
	s.SetHelp([]string{"arrows: move", "q: quit"})
	if s.Height() != 4 {
		t.Fatalf("Height() = %d, want 4", s.Height())
	}

	if n := s.Render(r, 5); n != 4 {
		t.Errorf("first Render() = %d rows, want 4", n)
	}
	if got := strings.TrimRight(b.Line(8), " "); got != "q: quit" {
		t.Errorf("help row = %q, want %q", got, "q: quit")
	}

	if n := s.Render(r, 5); n != 0 {
		t.Errorf("unchanged Render() = %d rows, want 0", n)
	}

	s.SetPosition(1, 0)
	if n := s.Render(r, 5); n != 1 {
		t.Errorf("Render() after move = %d rows, want 1", n)
	}
}
