// Package parallel provides the tile-based parallel rasterizer used to shade
// basin images.
//
// The canvas is divided into 64x64 pixel tiles. Each tile is one unit of work
// for the WorkerPool and covers a disjoint set of pixels, so workers can write
// into a single shared RGB buffer without locks.
package parallel

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64

	// TilePixels is the total number of pixels in a full tile.
	TilePixels = TileWidth * TileHeight

	// BytesPerPixel is the size of one pixel in the shared buffer (RGB).
	BytesPerPixel = 3
)

// Tile is a rectangular region of the canvas shaded by a single worker.
//
// Edge tiles may have smaller actual dimensions when the canvas is not
// evenly divisible by the tile size.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Index is the row-major position of the tile in its grid.
	Index int

	// Width is the actual width in pixels (may be < TileWidth for edge tiles).
	Width int

	// Height is the actual height in pixels (may be < TileHeight for edge tiles).
	Height int
}

// Bounds returns the pixel bounds of this tile in canvas space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// Contains returns true if the canvas-space pixel (cx, cy) is within this tile.
func (t *Tile) Contains(cx, cy int) bool {
	x, y, w, h := t.Bounds()
	return cx >= x && cx < x+w && cy >= y && cy < y+h
}

// Pixels returns the number of pixels covered by the tile.
func (t *Tile) Pixels() int {
	return t.Width * t.Height
}
