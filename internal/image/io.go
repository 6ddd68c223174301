package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when an encoding is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// fileMode is the permission of saved files. CreateTemp starts at 0600.
const fileMode = 0o644

// Encoding selects the file format written by Save.
type Encoding uint8

const (
	// EncodingPNG is lossless PNG (the default).
	EncodingPNG Encoding = iota

	// EncodingBMP is uncompressed 24-bit BMP.
	EncodingBMP

	// EncodingTIFF is Deflate-compressed TIFF.
	EncodingTIFF
)

// Ext returns the file extension for the encoding, without the dot.
func (e Encoding) Ext() string {
	switch e {
	case EncodingPNG:
		return "png"
	case EncodingBMP:
		return "bmp"
	case EncodingTIFF:
		return "tiff"
	default:
		return ""
	}
}

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingPNG:
		return "PNG"
	case EncodingBMP:
		return "BMP"
	case EncodingTIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// Encode writes img to w in the given encoding.
func Encode(w io.Writer, img image.Image, enc Encoding) error {
	var err error
	switch enc {
	case EncodingPNG:
		err = png.Encode(w, img)
	case EncodingBMP:
		err = bmp.Encode(w, img)
	case EncodingTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: encoding %d", ErrUnsupportedFormat, enc)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", enc, err)
	}
	return nil
}

// Save encodes img to path.
//
// The image is written to a temporary file in the same directory and renamed
// into place, so a failed encode never leaves a partial file at path.
func Save(path string, img image.Image, enc Encoding) error {
	if enc.Ext() == "" {
		return fmt.Errorf("%w: encoding %d", ErrUnsupportedFormat, enc)
	}

	path = filepath.Clean(path)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	tmp := f.Name()

	if err := Encode(f, img, enc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(fileMode); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("image: chmod file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("image: close file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("image: rename file: %w", err)
	}
	return nil
}
