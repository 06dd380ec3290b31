package app

import (
	"runtime/debug"
	"sync"
)

// pumped is a source with a background event pump.
type pumped interface {
	Start()
	Stop()
	Wait()
}

// session owns the terminal mode for the lifetime of Run. Stop is safe to
// call more than once and from a panic recovery.
type session struct {
	mu      sync.Mutex
	app     *Application
	started bool
}

// Start initializes the backend and starts the input pump.
func (s *session) Start(app *Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.backend.HideCursor()
	app.backend.EnableMouse()
	app.backend.Clear()

	if p, ok := app.source.(pumped); ok {
		p.Start()
	}

	s.app = app
	s.started = true
	return nil
}

// Stop stops the input pump and restores the terminal. The pump is told
// to stop before the backend shuts down so it never polls a finalized
// screen.
func (s *session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false

	p, hasPump := s.app.source.(pumped)
	if hasPump {
		p.Stop()
	}
	s.app.backend.DisableMouse()
	s.app.backend.Shutdown()
	if hasPump {
		p.Wait()
	}
}

// recoverPanic turns a panic in the loop into an error after restoring
// the terminal, so the message is readable on the normal screen.
func (app *Application) recoverPanic(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	app.session.Stop()

	perr := NewRecoveredPanicError(r, string(debug.Stack()))
	app.logger.Error("%v\n%s", perr, perr.Stack)
	*errp = perr
}
