package basins

import (
	"fmt"
	"os"
	"path/filepath"

	intImage "github.com/gogpu/basins/internal/image"
)

// Encoding selects the file format of a saved artifact.
type Encoding = intImage.Encoding

// Supported encodings.
const (
	PNG  = intImage.EncodingPNG
	BMP  = intImage.EncodingBMP
	TIFF = intImage.EncodingTIFF
)

// DefaultDir is the directory FileSink writes to when Dir is empty.
const DefaultDir = "figs"

// Sink persists finished artifacts.
type Sink interface {
	// Save persists a and returns where it was written.
	Save(a *Artifact) (string, error)
}

// FileSink writes artifacts to Dir as attractors_<unix>.<ext>.
//
// If Preview is positive, a copy scaled so its longer side is Preview
// pixels, with the attractors marked and a caption, is also written as
// attractors_<unix>_preview.png. The full-size file is never annotated.
type FileSink struct {
	Dir     string
	Format  Encoding
	Preview int
}

// Save writes a and returns the path of the full-size file.
//
// Nothing is written if the artifact's buffer does not match its size. The
// directory is created if missing, and each file is written to a temporary
// name and renamed into place.
func (s FileSink) Save(a *Artifact) (string, error) {
	ext := s.Format.Ext()
	if ext == "" {
		return "", fmt.Errorf("basins: save: %w: %v", ErrUnsupportedFormat, s.Format)
	}

	img, err := a.buf()
	if err != nil {
		return "", fmt.Errorf("basins: save: %w", err)
	}

	dir := s.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("basins: save: %w", err)
	}

	path := filepath.Join(dir, a.Name()+"."+ext)
	if err := intImage.Save(path, img, s.Format); err != nil {
		return "", fmt.Errorf("basins: save %s: %w", path, err)
	}
	Logger().Info("basins: artifact saved", "path", path, "format", s.Format)

	if s.Preview > 0 {
		pv := intImage.Preview(img, s.Preview, a.markers(), a.Caption())
		ppath := filepath.Join(dir, a.Name()+"_preview.png")
		if err := intImage.Save(ppath, pv, intImage.EncodingPNG); err != nil {
			return path, fmt.Errorf("basins: save preview %s: %w", ppath, err)
		}
		Logger().Info("basins: preview saved", "path", ppath, "size", s.Preview)
	}

	return path, nil
}
