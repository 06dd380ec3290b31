package app

import (
	"errors"
	"testing"
)

func TestComponentError(t *testing.T) {
	base := errors.New("disk full")
	tests := []struct {
		err  *ComponentError
		want string
	}{
		{NewComponentError("codec", "save", base), "codec: save: disk full"},
		{NewComponentError("codec", "save", nil), "codec: save"},
		{NewComponentError("codec", "", base), "codec: disk full"},
		{NewComponentError("codec", "", nil), "codec"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if !errors.Is(NewComponentError("codec", "save", base), base) {
		t.Error("ComponentError should unwrap")
	}
}

func TestInitError(t *testing.T) {
	base := errors.New("no tty")
	err := &InitError{Component: "backend", Err: base}
	if err.Error() != "init backend: no tty" || !errors.Is(err, base) {
		t.Errorf("InitError = %q", err)
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("boom", "stack")
	if err.Error() != "panic: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
