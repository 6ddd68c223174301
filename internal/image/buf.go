// Package image provides the pixel buffer view and file encoders used to
// persist rendered basin images.
package image

import (
	"errors"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one packed RGB pixel.
const BytesPerPixel = 3

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrSizeMismatch is returned when raw data is not exactly
	// width*height*BytesPerPixel bytes long.
	ErrSizeMismatch = errors.New("image: data length does not match dimensions")
)

// ImageBuf is a structured view over a tightly packed, row-major RGB
// buffer.
//
// ImageBuf implements image.Image, so it can be handed to any encoder
// without first being converted.
//
// Thread safety: ImageBuf is safe for concurrent read access.
type ImageBuf struct {
	data   []byte
	width  int
	height int
}

// FromRaw wraps existing data without copying.
//
// The data must be exactly width*height*BytesPerPixel long; any other
// length is a contract violation and returns ErrSizeMismatch.
func FromRaw(data []byte, width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height*BytesPerPixel {
		return nil, ErrSizeMismatch
	}

	return &ImageBuf{
		data:   data,
		width:  width,
		height: height,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * BytesPerPixel
}

// RGB returns the color channels of pixel (x, y).
// Out-of-bounds pixels read as black.
func (b *ImageBuf) RGB(x, y int) (r, g, bl uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0
	}
	return b.data[off], b.data[off+1], b.data[off+2]
}

// ColorModel implements image.Image.
func (b *ImageBuf) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *ImageBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *ImageBuf) At(x, y int) color.Color {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: b.data[off], G: b.data[off+1], B: b.data[off+2], A: 255}
}

// Opaque reports that every pixel is fully opaque. Encoders use it to skip
// the alpha channel.
func (b *ImageBuf) Opaque() bool {
	return true
}
