package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/glyphpaint/internal/canvas"
)

// Format selects how paintings are saved.
type Format int

const (
	FormatText Format = iota
	FormatANSI
)

// ParseFormat parses "text" or "ansi".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "ansi", "ans":
		return FormatANSI, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns the config name of the format.
func (f Format) String() string {
	if f == FormatANSI {
		return "ansi"
	}
	return "text"
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatANSI {
		return ".ans"
	}
	return ".txt"
}

// Encode serializes the grid in this format.
func (f Format) Encode(g *canvas.Grid) ([]byte, error) {
	if f == FormatANSI {
		return EncodeANSI(g)
	}
	return EncodeText(g), nil
}

// Store reads and writes paintings on disk.
type Store struct {
	dir    string
	format Format
	now    func() time.Time
}

// NewStore creates a store saving into dir ("" means the working
// directory) in the given format.
func NewStore(dir string, format Format) *Store {
	return &Store{dir: dir, format: format, now: time.Now}
}

// SetClock replaces the time source used for file names.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Format returns the save format.
func (s *Store) Format() Format {
	return s.format
}

// Save writes the grid to painting_<unix seconds><ext> in the store's
// directory and returns the path written. An existing file is never
// overwritten; a numeric suffix is added instead.
func (s *Store) Save(g *canvas.Grid) (string, error) {
	dir := s.dir
	if dir == "" {
		dir = "."
	}
	base := fmt.Sprintf("painting_%d", s.now().Unix())
	path := filepath.Join(dir, base+s.format.Ext())

	data, err := s.format.Encode(g)
	if err != nil {
		return "", newError("save", path, ErrUnwritablePath, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", newError("save", path, ErrUnwritablePath, err)
	}

	for i := 1; ; i++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, s.format.Ext()))
			continue
		}
		if err != nil {
			return "", newError("save", path, ErrUnwritablePath, err)
		}
		_, werr := f.Write(data)
		cerr := f.Close()
		if werr == nil {
			werr = cerr
		}
		if werr != nil {
			return "", newError("save", path, ErrUnwritablePath, werr)
		}
		return path, nil
	}
}

// ImportImage converts the image at path to fills for a width x height
// grid.
func (s *Store) ImportImage(path string, width, height int) ([]Fill, error) {
	return ImportImage(path, width, height)
}

// Load reads a text painting into the grid and returns the number of
// non-empty cells placed.
func (s *Store) Load(path string, g *canvas.Grid) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, newError("load", path, ErrUnreadableFile, err)
	}
	return LoadText(g, data), nil
}
