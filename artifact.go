package basins

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	intImage "github.com/gogpu/basins/internal/image"
)

// markerColor is the color of attractor markers on previews.
var markerColor = color.RGBA{R: 230, G: 40, B: 40, A: 255}

// Artifact is a finished render.
type Artifact struct {
	// Pix holds Width*Height row-major RGB pixels.
	Pix []byte

	Width, Height int

	// Zoom is the half-extent of the simulated square.
	Zoom float64

	// Created is when the render started. Its Unix seconds name the file.
	Created time.Time

	// Attractors is the set the image was shaded with.
	Attractors []Attractor

	// Histogram counts pixels per class index.
	Histogram []uint64

	// Escaped counts pixels whose trajectory passed the escape radius.
	Escaped uint64
}

// Name returns the base file name of the artifact, without extension.
func (a *Artifact) Name() string {
	return fmt.Sprintf("attractors_%d", a.Created.Unix())
}

// Image returns a view of the pixels as an image.Image.
// It fails with ErrSizeMismatch if Pix does not hold Width*Height pixels.
func (a *Artifact) Image() (image.Image, error) {
	img, err := a.buf()
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (a *Artifact) buf() (*intImage.ImageBuf, error) {
	img, err := intImage.FromRaw(a.Pix, a.Width, a.Height)
	if err != nil {
		return nil, fmt.Errorf("basins: artifact %dx%d with %d bytes: %w", a.Width, a.Height, len(a.Pix), err)
	}
	return img, nil
}

// ToPixel maps a simulation-space point to fractional pixel coordinates.
func (a *Artifact) ToPixel(p Point) (x, y float64) {
	x = (p.X/a.Zoom + 1) / 2 * float64(a.Width)
	y = (p.Y/a.Zoom + 1) / 2 * float64(a.Height)
	return x, y
}

// Caption summarizes the render in one ASCII line.
func (a *Artifact) Caption() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%dx%d zoom %g, %d attractors, %d escaped",
		a.Width, a.Height, a.Zoom, len(a.Attractors), a.Escaped)
}

func (a *Artifact) markers() []intImage.Marker {
	markers := make([]intImage.Marker, 0, len(a.Attractors))
	for _, at := range a.Attractors {
		x, y := a.ToPixel(at.Pos())
		markers = append(markers, intImage.Marker{X: x, Y: y, Color: markerColor})
	}
	return markers
}
