package basins

import (
	"errors"

	intImage "github.com/gogpu/basins/internal/image"
)

var (
	// ErrInvalidConfig is returned by Config.Validate and New when a
	// configuration cannot be rendered.
	ErrInvalidConfig = errors.New("basins: invalid config")

	// ErrIncomplete is returned by Render when a tile was not shaded or the
	// progress counter did not reach width*height.
	ErrIncomplete = errors.New("basins: render incomplete")

	// ErrSizeMismatch is returned when a pixel buffer's length does not equal
	// width*height*3.
	ErrSizeMismatch = intImage.ErrSizeMismatch

	// ErrUnsupportedFormat is returned when a sink is given an unknown
	// encoding.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat
)
