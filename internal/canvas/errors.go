package canvas

import "errors"

// ErrInvalidDimension indicates a grid was requested with a non-positive
// width or height.
var ErrInvalidDimension = errors.New("invalid grid dimension")
