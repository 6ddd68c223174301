package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Marker is a point highlighted on a preview, in source pixel coordinates.
type Marker struct {
	X, Y  float64
	Color color.RGBA
}

// markerArm is the half-length of a marker cross in preview pixels.
const markerArm = 4

// Preview returns a downscaled copy of src whose longer side is size pixels,
// with markers drawn as crosses and caption written along the bottom edge.
//
// If src already fits within size it is copied at its own resolution.
func Preview(src image.Image, size int, markers []Marker, caption string) *image.RGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if size > 0 && (w > size || h > size) {
		if w >= h {
			w, h = size, max(1, h*size/w)
		} else {
			w, h = max(1, w*size/h), size
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}

	sx := float64(w) / float64(sb.Dx())
	sy := float64(h) / float64(sb.Dy())
	for _, m := range markers {
		drawCross(dst, int(m.X*sx), int(m.Y*sy), m.Color)
	}

	if caption != "" {
		drawCaption(dst, caption)
	}

	return dst
}

// drawCross draws a plus-shaped marker with a one-pixel dark outline so it
// stays visible on both light and dark basins.
func drawCross(dst *image.RGBA, cx, cy int, c color.RGBA) {
	outline := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	for d := -markerArm - 1; d <= markerArm+1; d++ {
		for off := -1; off <= 1; off++ {
			dst.SetRGBA(cx+d, cy+off, outline)
			dst.SetRGBA(cx+off, cy+d, outline)
		}
	}
	for d := -markerArm; d <= markerArm; d++ {
		dst.SetRGBA(cx+d, cy, c)
		dst.SetRGBA(cx, cy+d, c)
	}
}

// drawCaption writes text on a translucent band at the bottom of dst.
func drawCaption(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	b := dst.Bounds()
	band := image.Rect(b.Min.X, b.Max.Y-lineHeight-4, b.Max.X, b.Max.Y)
	draw.Draw(dst, band, image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(band.Min.X+4, band.Max.Y-2-metrics.Descent.Ceil()),
	}
	d.DrawString(text)
}
