// Package input turns terminal events into paint commands.
//
// A Source yields at most one decoded Command per Poll and never blocks.
// TerminalSource reads a backend on a pump goroutine and decodes keys
// through a Keymap; ScriptSource replays a fixed list for tests.
//
// The command set is closed: the movement commands, the drawing
// commands, Save, LoadImage and Quit, plus ToggleTool, PaintAt and
// ClearCanvas.
package input
