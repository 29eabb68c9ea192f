package resolve

import (
	"errors"
)

var (
	// ErrInvalidPath is delivered when an operation is called with an
	// empty path. The outcome is never cached or merged.
	ErrInvalidPath = errors.New("resolve: path must be a non-empty string")

	// ErrEmptyContent is delivered by the synthesized ReadJSON when the
	// underlying file exists but has no content. It is wrapped in an
	// *fs.PathError so errors.Is still matches.
	ErrEmptyContent = errors.New("resolve: no file content")
)
