package codec

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	// ErrUnreadableImage indicates an image could not be opened or decoded.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrUnreadableFile indicates a saved painting could not be read.
	ErrUnreadableFile = errors.New("unreadable file")

	// ErrUnwritablePath indicates a painting could not be written.
	ErrUnwritablePath = errors.New("unwritable path")

	// ErrInvalidSize indicates a non-positive target size.
	ErrInvalidSize = errors.New("invalid size")

	// ErrUnknownFormat indicates an unsupported save format name.
	ErrUnknownFormat = errors.New("unknown format")
)

// CodecError records a failed codec operation on a path.
type CodecError struct {
	Op   string // Operation name ("save", "import", "load")
	Path string // File involved
	Err  error  // Underlying error
}

func newError(op, path string, kind, cause error) *CodecError {
	err := kind
	if cause != nil {
		err = fmt.Errorf("%w: %w", kind, cause)
	}
	return &CodecError{Op: op, Path: path, Err: err}
}

func (e *CodecError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
