// Package key provides key event types and key specification parsing
// for keymaps.
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "q", "1", "Enter", "Escape", "Space"
//   - With modifiers: "Ctrl+S", "Alt+x"
//   - Vim-style: "<C-s>", "<Esc>", "<CR>", "<Space>"
//
// Parsed events are normalized so they can be used directly as map keys
// and compared with events decoded from the terminal.
package key
