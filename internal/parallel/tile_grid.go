package parallel

// TileGrid divides a canvas into tiles.
//
// Tiles are stored in a flat slice in row-major order and never overlap, so
// together they cover every canvas pixel exactly once.
//
// Thread safety: TileGrid is immutable after construction.
type TileGrid struct {
	tiles  []*Tile
	tilesX int
	tilesY int
	width  int
	height int
}

// NewTileGrid creates a tile grid for the given canvas dimensions.
// Returns an empty grid if either dimension is non-positive.
func NewTileGrid(width, height int) *TileGrid {
	if width <= 0 || height <= 0 {
		return &TileGrid{}
	}

	tilesX := (width + TileWidth - 1) / TileWidth
	tilesY := (height + TileHeight - 1) / TileHeight

	g := &TileGrid{
		tiles:  make([]*Tile, 0, tilesX*tilesY),
		tilesX: tilesX,
		tilesY: tilesY,
		width:  width,
		height: height,
	}

	for ty := range tilesY {
		for tx := range tilesX {
			w := min(TileWidth, width-tx*TileWidth)
			h := min(TileHeight, height-ty*TileHeight)
			g.tiles = append(g.tiles, &Tile{
				X:      tx,
				Y:      ty,
				Index:  ty*tilesX + tx,
				Width:  w,
				Height: h,
			})
		}
	}

	return g
}

// TileAt returns the tile at tile coordinates (tx, ty).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// TileAtPixel returns the tile containing the canvas pixel (px, py).
// Returns nil if the pixel is outside the canvas.
func (g *TileGrid) TileAtPixel(px, py int) *Tile {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return nil
	}
	return g.tiles[(py/TileHeight)*g.tilesX+px/TileWidth]
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// TilesX returns the number of tiles horizontally.
func (g *TileGrid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *TileGrid) TilesY() int {
	return g.tilesY
}

// AllTiles returns all tiles in the grid.
// The returned slice should not be modified.
func (g *TileGrid) AllTiles() []*Tile {
	return g.tiles
}
