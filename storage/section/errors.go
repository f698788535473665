package section

import "errors"

// Errors returned by section operations.
var (
	// ErrOutOfBounds indicates an item position outside the valid range.
	ErrOutOfBounds = errors.New("item position out of bounds")
)
