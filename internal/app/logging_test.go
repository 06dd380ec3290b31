package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"Error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelDebug).WithFields(map[string]any{"b": 2, "a": "x"})

	l.Info("saved %d cells", 3)

	want := "2024-05-01T12:00:00.000 [INFO] test: saved 3 cells {a=x, b=2}\n"
	if buf.String() != want {
		t.Errorf("log line = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("below-level messages were written: %q", buf.String())
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("got %q, want two lines", buf.String())
	}

	buf.Reset()
	l.Disable()
	l.Error("nope")
	if buf.Len() != 0 {
		t.Error("disabled logger wrote output")
	}
}

func TestLogger_WithComponentDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := fixedLogger(&buf, LogLevelInfo)
	child := parent.WithComponent("codec")

	if _, ok := parent.Field("component"); ok {
		t.Error("WithComponent changed the parent")
	}
	if v, _ := child.Field("component"); v != "codec" {
		t.Errorf("component = %v", v)
	}

	child.Error("boom")
	if !strings.Contains(buf.String(), "{component=codec}") {
		t.Errorf("log line = %q", buf.String())
	}
}

func TestNewSessionLogger(t *testing.T) {
	var buf bytes.Buffer
	a := NewSessionLogger(LoggerConfig{Output: &buf})
	b := NewSessionLogger(LoggerConfig{Output: &buf})

	va, ok := a.Field("session")
	if !ok {
		t.Fatal("session field missing")
	}
	if _, err := uuid.Parse(va.(string)); err != nil {
		t.Errorf("session %v is not a uuid: %v", va, err)
	}
	if vb, _ := b.Field("session"); vb == va {
		t.Error("sessions share an id")
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing %d", 1)
	NullLogger.WithComponent("x").Info("still nothing")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "glyphpaint.log")
	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile() error: %v", err)
	}
	defer f.Close()

	l := NewLogger(LoggerConfig{Output: f})
	l.Info("hello")
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		t.Errorf("log file empty: %v", err)
	}
}
